package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
)

// StockCache is a read-through copy of ingredient stock used when the
// database is rate limiting reads. Entries may be stale.
type StockCache interface {
	Put(ctx context.Context, ingredients ...*inventory.Ingredient) error

	// GetMany returns the cached ingredients among ids; misses are absent.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*inventory.Ingredient, error)
}
