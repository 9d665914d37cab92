package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

type RefreshLowStockCommandHandler struct {
	uowFactory IngredientUoWFactory
	cache      ports.StockCache
	logger     *slog.Logger
}

// NewRefreshLowStockCommandHandler builds the handler. cache may be nil.
func NewRefreshLowStockCommandHandler(
	uowFactory IngredientUoWFactory,
	cache ports.StockCache,
	logger *slog.Logger,
) *RefreshLowStockCommandHandler {
	return &RefreshLowStockCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "low_stock"),
	}
}

// Handle returns how many ingredients are low. A cache write failure is
// logged, not returned.
func (h *RefreshLowStockCommandHandler) Handle(ctx context.Context, command RefreshLowStockCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	low, err := h.uowFactory.Create().IngredientRepository().GetLowStock(ctx)
	if err != nil {
		return 0, err
	}

	for _, i := range low {
		h.logger.WarnContext(ctx, "Ingredient low on stock",
			"ingredient_id", i.ID().String(),
			"name", i.Name(),
			"quantity", i.Quantity().String(),
			"threshold", i.Threshold().String(),
			"unit", i.Unit(),
		)
	}

	if h.cache != nil && len(low) > 0 {
		if err := h.cache.Put(ctx, low...); err != nil {
			h.logger.WarnContext(ctx, "Failed to refresh stock cache", "error", err)
		}
	}
	return len(low), nil
}
