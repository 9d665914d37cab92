package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"fulfillment/internal/core/application/opqueue"
	"fulfillment/internal/core/application/orderstore"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// AssignChefCommandHandler changes the chef of an order. Like transitions,
// the change is visible in the store at once and committed through the
// queue under the order id, so it is ordered with the order's transitions.
type AssignChefCommandHandler struct {
	store         *orderstore.Store
	queue         TaskQueue
	uowFactory    OrderUoWFactory
	commitTimeout time.Duration
	logger        *slog.Logger
}

func NewAssignChefCommandHandler(
	store *orderstore.Store,
	queue TaskQueue,
	uowFactory OrderUoWFactory,
	commitTimeout time.Duration,
	logger *slog.Logger,
) *AssignChefCommandHandler {
	if commitTimeout <= 0 {
		commitTimeout = DefaultCommitTimeout
	}
	return &AssignChefCommandHandler{
		store:         store,
		queue:         queue,
		uowFactory:    uowFactory,
		commitTimeout: commitTimeout,
		logger:        logger.With("component", "chef_assignment"),
	}
}

// Handle returns a channel that receives the commit outcome once.
func (h *AssignChefCommandHandler) Handle(ctx context.Context, cmd AssignChefCommand) (<-chan error, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	id := cmd.OrderID()
	snap, err := h.store.Load(ctx, id, h.fetch)
	if err != nil {
		return nil, err
	}
	// The store does not track terminal orders, so they are rejected here.
	if status := snap.Order.Status(); status.IsTerminal() {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			errors.New(status.String()+" orders cannot change chef"))
	}

	if _, err := h.store.Update(id, func(o *order.Order) error {
		return applyChef(o, cmd.ChefID())
	}); err != nil {
		return nil, err
	}

	done := make(chan error, 1)
	var committed atomic.Pointer[order.Order]
	task := opqueue.Task{
		Key:     id.String(),
		Name:    "assign_chef",
		Timeout: h.commitTimeout,
		Run: func(ctx context.Context) error {
			o, err := h.commit(ctx, cmd)
			if err != nil {
				return err
			}
			committed.Store(o)
			return nil
		},
		OnDone: func(err error) {
			if err == nil {
				h.store.Confirm(committed.Load())
			} else {
				h.store.Fail(id, err)
			}
			done <- err
			close(done)
		},
	}

	if err := h.queue.Enqueue(task); err != nil {
		h.store.Fail(id, err)
		return nil, err
	}

	h.logger.InfoContext(ctx, "Chef change accepted", "order_id", id.String(), "cleared", cmd.ChefID() == nil)
	return done, nil
}

func (h *AssignChefCommandHandler) fetch(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return h.uowFactory.Create().OrderRepository().Get(ctx, id)
}

func (h *AssignChefCommandHandler) commit(ctx context.Context, cmd AssignChefCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = applyChef(o, cmd.ChefID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func applyChef(o *order.Order, chefID *kernel.UUID) error {
	if chefID == nil {
		o.ClearChef()
		return nil
	}
	return o.AssignChef(*chefID)
}
