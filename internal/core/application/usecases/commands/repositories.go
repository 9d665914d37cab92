// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Commands validate input, then either persist directly inside a unit of work
// or, for order transitions, update the optimistic store and hand the commit
// to the operation queue.
package commands

import (
	"context"

	"fulfillment/internal/core/application/opqueue"
	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RecipeRepoFactory provides access to recipe repository within a transaction.
	RecipeRepoFactory interface {
		RecipeRepository() ports.RecipeRepository
	}

	// IngredientRepoFactory provides access to ingredient repository within a transaction.
	IngredientRepoFactory interface {
		IngredientRepository() ports.IngredientRepository
	}

	// SettingsRepoFactory provides access to settings repository within a transaction.
	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FulfillmentUoW spans an order together with the recipes and stock it
	// reserves. Used by transition commits that change status and stock atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   stock, err := uow.IngredientRepository().GetManyForUpdate(ctx, ids)
	//   // ... apply the reservation
	//
	//   err = uow.Commit(ctx)
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		RecipeRepoFactory
		IngredientRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// IngredientUoW manages transactions for stock-only operations.
	IngredientUoW interface {
		TxManager
		IngredientRepoFactory
	}

	// IngredientUoWFactory creates new ingredient unit of work instances.
	IngredientUoWFactory interface {
		Create() IngredientUoW
	}

	// SettingsUoW manages transactions for operator settings.
	SettingsUoW interface {
		TxManager
		SettingsRepoFactory
	}

	// SettingsUoWFactory creates new settings unit of work instances.
	SettingsUoWFactory interface {
		Create() SettingsUoW
	}

	// TaskQueue accepts background commit tasks.
	TaskQueue interface {
		Enqueue(task opqueue.Task) error
	}
)
