// Package ports defines the contracts between the fulfillment core and its
// infrastructure: repositories, the unit of work and the stock cache.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their items, chef assignment and reserved flag.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, chef and reserved flag of an existing order.
	// Items are immutable once created.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns *errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the surrounding
	// transaction ends. Must be called inside a unit of work transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
