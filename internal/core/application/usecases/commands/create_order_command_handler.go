package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderSeeder makes a freshly persisted order visible to readers of the
// optimistic store.
type OrderSeeder interface {
	Seed(o *order.Order) bool
}

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start in "pending" status with no chef and nothing reserved.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, store)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), lines)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and can be accepted
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	seeder     OrderSeeder
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, seeder OrderSeeder) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		seeder:     seeder,
	}
}

// Handle processes the order creation command.
// Uses transaction to ensure order and items are persisted together or not at all.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Items())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.seeder != nil {
		h.seeder.Seed(o)
	}
	return nil
}
