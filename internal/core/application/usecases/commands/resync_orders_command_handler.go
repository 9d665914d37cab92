package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// OrderRefresher is the part of the optimistic store a resync needs.
type OrderRefresher interface {
	Stale() []kernel.UUID
	Refresh(o *order.Order)
	Forget(id kernel.UUID)
}

type ResyncOrdersCommandHandler struct {
	store      OrderRefresher
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewResyncOrdersCommandHandler(
	store OrderRefresher,
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) *ResyncOrdersCommandHandler {
	return &ResyncOrdersCommandHandler{
		store:      store,
		uowFactory: uowFactory,
		logger:     logger.With("component", "order_resync"),
	}
}

// Handle refreshes each stale order from the database. Orders that no longer
// exist are forgotten. One failing read does not stop the others; all
// failures are returned joined.
func (h *ResyncOrdersCommandHandler) Handle(ctx context.Context, command ResyncOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	ids := h.store.Stale()
	if len(ids) == 0 {
		return nil
	}

	repo := h.uowFactory.Create().OrderRepository()

	var failures []error
	refreshed := 0
	for _, id := range ids {
		o, err := repo.Get(ctx, id)
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			h.store.Forget(id)
			h.logger.WarnContext(ctx, "Stale order no longer stored, dropped", "order_id", id.String())
		case err != nil:
			failures = append(failures, fmt.Errorf("resync order %s: %w", id, err))
		default:
			h.store.Refresh(o)
			refreshed++
		}
	}

	h.logger.InfoContext(ctx, "Stale orders resynced", "refreshed", refreshed, "failed", len(failures))
	return errors.Join(failures...)
}
