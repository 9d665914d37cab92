package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/recipe"
)

// RecipeRepository defines the persistence contract for recipes.
// At most one recipe exists per menu item.
type RecipeRepository interface {
	Add(ctx context.Context, aggregate *recipe.Recipe) error

	Get(ctx context.Context, id kernel.UUID) (*recipe.Recipe, error)

	// GetByMenuItem returns *errs.ObjectNotFoundError when the menu item has no recipe.
	GetByMenuItem(ctx context.Context, menuItemID kernel.UUID) (*recipe.Recipe, error)

	// GetByMenuItems returns the recipes that exist for the given menu items.
	// Menu items without a recipe are silently absent from the result.
	GetByMenuItems(ctx context.Context, menuItemIDs []kernel.UUID) ([]*recipe.Recipe, error)
}
