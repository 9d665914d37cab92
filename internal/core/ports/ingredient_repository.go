package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
)

// IngredientRepository defines the persistence contract for ingredient stock.
type IngredientRepository interface {
	Add(ctx context.Context, aggregate *inventory.Ingredient) error

	Get(ctx context.Context, id kernel.UUID) (*inventory.Ingredient, error)

	// GetMany returns the ingredients that exist among ids. Missing ids are
	// absent from the result rather than reported as errors.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*inventory.Ingredient, error)

	// GetManyForUpdate is GetMany with row locks taken in ascending id order.
	// Must be called inside a unit of work transaction.
	GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*inventory.Ingredient, error)

	// SetQuantity writes an absolute stock quantity. Writing the same value
	// twice has the same effect as writing it once.
	SetQuantity(ctx context.Context, id kernel.UUID, quantity kernel.Quantity) error

	// GetLowStock lists ingredients whose quantity is at or below their threshold.
	GetLowStock(ctx context.Context) ([]*inventory.Ingredient, error)
}
