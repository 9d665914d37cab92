// Package catalog loads the recipes and ingredient stock an engine operation
// needs. When the database rate limits stock reads, the loader answers from
// the stock cache instead.
package catalog

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/recipe"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// Snapshot is what an availability check or a scaling request reads.
type Snapshot struct {
	Book  services.RecipeBook
	Stock services.Stock
	// FromCache is set when stock came from the cache because the database
	// was rate limiting.
	FromCache bool
}

type Loader struct {
	recipes     ports.RecipeRepository
	ingredients ports.IngredientRepository
	cache       ports.StockCache
	logger      *slog.Logger
}

// NewLoader builds a loader. cache may be nil.
func NewLoader(
	recipes ports.RecipeRepository,
	ingredients ports.IngredientRepository,
	cache ports.StockCache,
	logger *slog.Logger,
) *Loader {
	return &Loader{
		recipes:     recipes,
		ingredients: ingredients,
		cache:       cache,
		logger:      logger.With("component", "catalog_loader"),
	}
}

// ForOrder loads the recipes of every menu item in o and the stock of every
// ingredient those recipes use. Missing recipes and ingredients are left out;
// the availability check reports them.
func (l *Loader) ForOrder(ctx context.Context, o *order.Order) (Snapshot, error) {
	if err := o.Validate(); err != nil {
		return Snapshot{}, err
	}

	seen := make(map[kernel.UUID]struct{})
	menuItems := make([]kernel.UUID, 0, len(o.Items()))
	for _, item := range o.Items() {
		if _, ok := seen[item.MenuItemID()]; ok {
			continue
		}
		seen[item.MenuItemID()] = struct{}{}
		menuItems = append(menuItems, item.MenuItemID())
	}

	recipes, err := l.recipes.GetByMenuItems(ctx, menuItems)
	if err != nil {
		return Snapshot{}, err
	}
	book, err := services.NewRecipeBook(recipes...)
	if err != nil {
		return Snapshot{}, err
	}

	stock, fromCache, err := l.loadStock(ctx, ingredientsOf(recipes...))
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Book: book, Stock: stock, FromCache: fromCache}, nil
}

// ForRecipe loads one recipe and the stock of its ingredients.
func (l *Loader) ForRecipe(ctx context.Context, recipeID kernel.UUID) (*recipe.Recipe, Snapshot, error) {
	r, err := l.recipes.Get(ctx, recipeID)
	if err != nil {
		return nil, Snapshot{}, err
	}
	book, err := services.NewRecipeBook(r)
	if err != nil {
		return nil, Snapshot{}, err
	}

	stock, fromCache, err := l.loadStock(ctx, ingredientsOf(r))
	if err != nil {
		return nil, Snapshot{}, err
	}
	return r, Snapshot{Book: book, Stock: stock, FromCache: fromCache}, nil
}

func (l *Loader) loadStock(ctx context.Context, ids []kernel.UUID) (services.Stock, bool, error) {
	if len(ids) == 0 {
		return services.NewStock(), false, nil
	}

	ingredients, err := l.ingredients.GetMany(ctx, ids)
	if err == nil {
		l.warmCache(ctx, ingredients)
		return services.NewStock(ingredients...), false, nil
	}

	if !errors.Is(err, errs.ErrRateLimited) || l.cache == nil {
		return nil, false, err
	}

	l.logger.WarnContext(ctx, "Stock reads rate limited, serving from cache", "error", err)
	cached, cacheErr := l.cache.GetMany(ctx, ids)
	if cacheErr != nil {
		return nil, false, errors.Join(err, cacheErr)
	}
	return services.NewStock(cached...), true, nil
}

func (l *Loader) warmCache(ctx context.Context, ingredients []*inventory.Ingredient) {
	if l.cache == nil || len(ingredients) == 0 {
		return
	}
	if err := l.cache.Put(ctx, ingredients...); err != nil {
		l.logger.WarnContext(ctx, "Failed to refresh stock cache", "error", err)
	}
}

func ingredientsOf(recipes ...*recipe.Recipe) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{})
	var ids []kernel.UUID
	for _, r := range recipes {
		for _, req := range r.Requirements() {
			if _, ok := seen[req.IngredientID()]; ok {
				continue
			}
			seen[req.IngredientID()] = struct{}{}
			ids = append(ids, req.IngredientID())
		}
	}
	return ids
}
