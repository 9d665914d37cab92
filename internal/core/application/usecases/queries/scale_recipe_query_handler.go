package queries

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

type ScaleRecipeQueryHandler struct {
	loader   CatalogLoader
	settings ports.SettingsRepository
	scaler   services.ServingScaler
}

func NewScaleRecipeQueryHandler(loader CatalogLoader, settings ports.SettingsRepository) ScaleRecipeQueryHandler {
	return ScaleRecipeQueryHandler{
		loader:   loader,
		settings: settings,
		scaler:   services.NewServingScaler(),
	}
}

// Handle reads the serving limit on every call so operator changes apply
// without a restart.
func (h ScaleRecipeQueryHandler) Handle(ctx context.Context, query ScaleRecipeQuery) (*ScaleRecipeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	maxServings, _, err := loadMaxServings(ctx, h.settings)
	if err != nil {
		return nil, err
	}

	r, snapshot, err := h.loader.ForRecipe(ctx, query.RecipeID())
	if err != nil {
		return nil, err
	}

	scaled, err := h.scaler.Scale(r, query.Servings(), maxServings.Int(), snapshot.Stock)
	if err != nil {
		return nil, err
	}

	return &ScaleRecipeQueryResponse{
		RecipeID:           r.ID(),
		MenuItemID:         r.MenuItemID(),
		StandardServingPax: r.StandardServingPax(),
		Servings:           query.Servings(),
		MaxServings:        maxServings.Int(),
		Ingredients:        scaled,
		FromCache:          snapshot.FromCache,
	}, nil
}
