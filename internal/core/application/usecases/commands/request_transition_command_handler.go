package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"fulfillment/internal/core/application/catalog"
	"fulfillment/internal/core/application/opqueue"
	"fulfillment/internal/core/application/orderstore"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// DefaultCommitTimeout bounds one attempt of a transition commit.
const DefaultCommitTimeout = 15 * time.Second

// CatalogLoader reads the recipes and stock an order needs.
type CatalogLoader interface {
	ForOrder(ctx context.Context, o *order.Order) (catalog.Snapshot, error)
}

// TransitionResult is the synchronous answer to a transition request.
type TransitionResult struct {
	OrderID  kernel.UUID
	Accepted bool
	// From is the status the caller saw before the request.
	From order.Status
	// Status is the status now visible in the store.
	Status order.Status
	// Reason and Shortages explain a rejected accept.
	Reason    string
	Shortages []services.Shortage
	// Done receives the commit outcome exactly once and is then closed.
	// It is nil when the request was rejected.
	Done <-chan error
}

// Err returns an *errs.InsufficientInventoryError for a rejected accept and
// nil otherwise.
func (r TransitionResult) Err() error {
	if r.Accepted {
		return nil
	}
	return errs.NewInsufficientInventoryError(r.OrderID.String(), r.Shortages)
}

// RequestTransitionCommandHandler advances orders through the status machine.
//
// The request is decided synchronously against the optimistic view of the
// order: invalid transitions and unknown orders fail at once, and an accept
// is rejected when stock does not cover the order. An allowed transition is
// applied to the store immediately and the database commit is queued under
// the order id, so commits of one order run in request order.
//
// The commit runs in one transaction. It locks the order row and, for
// reservations, the ingredient rows. Stock is checked again under those
// locks. A commit that finds the order already in the target status is a
// no-op, so retried attempts never reserve twice. Failed commits leave the
// optimistic status in place and mark the order stale.
type RequestTransitionCommandHandler struct {
	store         *orderstore.Store
	queue         TaskQueue
	loader        CatalogLoader
	uowFactory    FulfillmentUoWFactory
	commitTimeout time.Duration
	logger        *slog.Logger

	checker services.AvailabilityChecker
	applier services.ReservationApplier
}

func NewRequestTransitionCommandHandler(
	store *orderstore.Store,
	queue TaskQueue,
	loader CatalogLoader,
	uowFactory FulfillmentUoWFactory,
	commitTimeout time.Duration,
	logger *slog.Logger,
) *RequestTransitionCommandHandler {
	if commitTimeout <= 0 {
		commitTimeout = DefaultCommitTimeout
	}
	return &RequestTransitionCommandHandler{
		store:         store,
		queue:         queue,
		loader:        loader,
		uowFactory:    uowFactory,
		commitTimeout: commitTimeout,
		logger:        logger.With("component", "order_transitions"),
		checker:       services.NewAvailabilityChecker(),
		applier:       services.NewReservationApplier(),
	}
}

// Handle decides the request and, when allowed, queues its commit.
//
// Returned errors are synchronous rejections: validation, invalid transition,
// unknown order or a missing recipe or ingredient. Insufficient stock is not
// an error; it yields Accepted=false with the shortage list.
func (h *RequestTransitionCommandHandler) Handle(
	ctx context.Context,
	cmd RequestTransitionCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	id := cmd.OrderID()
	snap, err := h.store.Load(ctx, id, h.fetch)
	if err != nil {
		return TransitionResult{}, err
	}

	preview := snap.Order.Clone()
	from, err := preview.Transition(cmd.Action())
	if err != nil {
		return TransitionResult{}, err
	}

	// An order still holding its reservation takes no new stock on accept.
	if cmd.Action() == order.Accept && !snap.Order.Reserved() {
		rejection, covered, err := h.checkStock(ctx, snap.Order, from)
		if err != nil {
			return TransitionResult{}, err
		}
		if !covered {
			return rejection, nil
		}
	}

	updated, err := h.store.Update(id, func(o *order.Order) error {
		if _, err := o.Transition(cmd.Action()); err != nil {
			return err
		}
		if chefID := cmd.ChefID(); chefID != nil {
			return o.AssignChef(*chefID)
		}
		return nil
	})
	if err != nil {
		return TransitionResult{}, err
	}

	done := make(chan error, 1)
	var committed atomic.Pointer[order.Order]
	task := opqueue.Task{
		Key:     id.String(),
		Name:    "transition:" + cmd.Action().String(),
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

	if err = h.queue.Enqueue(task); err != nil {
		h.store.Fail(id, err)
		return TransitionResult{}, err
	}

	h.logger.InfoContext(ctx, "Transition accepted",
		"order_id", id.String(),
		"action", cmd.Action().String(),
		"from", from.String(),
		"to", updated.Status().String(),
	)

	return TransitionResult{
		OrderID:  id,
		Accepted: true,
		From:     from,
		Status:   updated.Status(),
		Done:     done,
	}, nil
}

func (h *RequestTransitionCommandHandler) fetch(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return h.uowFactory.Create().OrderRepository().Get(ctx, id)
}

// checkStock reports whether stock covers o, and the rejection to return
// when it does not.
func (h *RequestTransitionCommandHandler) checkStock(
	ctx context.Context,
	o *order.Order,
	from order.Status,
) (TransitionResult, bool, error) {
	snap, err := h.loader.ForOrder(ctx, o)
	if err != nil {
		return TransitionResult{}, false, err
	}

	result, err := h.checker.Check(o, snap.Book, snap.Stock)
	if err != nil {
		return TransitionResult{}, false, err
	}
	if result.OK {
		return TransitionResult{}, true, nil
	}

	h.logger.InfoContext(ctx, "Accept rejected, insufficient stock",
		"order_id", o.ID().String(),
		"shortages", len(result.Shortages),
		"from_cache", snap.FromCache,
	)
	return TransitionResult{
		OrderID:   o.ID(),
		Accepted:  false,
		From:      from,
		Status:    from,
		Reason:    errs.ErrInsufficientInventory.Error(),
		Shortages: result.Shortages,
	}, false, nil
}

func (h *RequestTransitionCommandHandler) commit(ctx context.Context, cmd RequestTransitionCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if o.Status() == cmd.Action().Target() {
		h.logger.InfoContext(ctx, "Transition already committed",
			"order_id", o.ID().String(), "status", o.Status().String())
		return o, nil
	}

	if _, err = o.Transition(cmd.Action()); err != nil {
		return nil, err
	}

	switch cmd.Action() {
	case order.Accept:
		if chefID := cmd.ChefID(); chefID != nil {
			if err = o.AssignChef(*chefID); err != nil {
				return nil, err
			}
		}
		if !o.Reserved() {
			if err = h.reserve(ctx, uow, o, services.Decrement); err != nil {
				return nil, err
			}
			o.MarkReserved()
		}
	case order.Revert:
		if cmd.RestoreInventory() {
			if o.Reserved() {
				if err = h.reserve(ctx, uow, o, services.Increment); err != nil {
					return nil, err
				}
				o.MarkReleased()
			} else {
				h.logger.InfoContext(ctx, "Restore skipped, order holds no reservation",
					"order_id", o.ID().String())
			}
		}
	default:
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// reserve applies the order's requirements to locked stock rows. A decrement
// re-checks availability first; a shortage here is permanent.
func (h *RequestTransitionCommandHandler) reserve(
	ctx context.Context,
	uow FulfillmentUoW,
	o *order.Order,
	direction services.Direction,
) error {
	recipes, err := uow.RecipeRepository().GetByMenuItems(ctx, menuItemsOf(o))
	if err != nil {
		return err
	}
	book, err := services.NewRecipeBook(recipes...)
	if err != nil {
		return err
	}
	ids, err := services.IngredientIDsOf(o, book)
	if err != nil {
		return err
	}

	ingredientRepo := uow.IngredientRepository()
	ingredients, err := ingredientRepo.GetManyForUpdate(ctx, ids)
	if err != nil {
		return err
	}
	stock := services.NewStock(ingredients...)

	if direction == services.Decrement {
		result, checkErr := h.checker.Check(o, book, stock)
		if checkErr != nil {
			return checkErr
		}
		if !result.OK {
			return errs.NewInsufficientInventoryError(o.ID().String(), result.Shortages)
		}
	}

	changes, err := h.applier.Apply(o, book, stock, direction)
	if err != nil {
		return err
	}

	var errList []error
	for _, change := range changes {
		if err = ingredientRepo.SetQuantity(ctx, change.IngredientID, change.New); err != nil {
			errList = append(errList, err)
		}
	}
	if err = errors.Join(errList...); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Stock reservation applied",
		"order_id", o.ID().String(),
		"direction", direction.String(),
		"ingredients", len(changes),
	)
	return nil
}

func menuItemsOf(o *order.Order) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{})
	var ids []kernel.UUID
	for _, item := range o.Items() {
		if _, ok := seen[item.MenuItemID()]; ok {
			continue
		}
		seen[item.MenuItemID()] = struct{}{}
		ids = append(ids, item.MenuItemID())
	}
	return ids
}
