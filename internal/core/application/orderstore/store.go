// Package orderstore keeps the engine's view of orders in two layers: the
// authoritative layer mirrors what the database last confirmed, and the
// optimistic layer holds transitions that were accepted but not yet
// committed. Readers see the optimistic order when one exists.
//
// A failed commit leaves the optimistic order in place and marks the order
// stale; a later Refresh with database truth reconciles it once no other
// work for that order is pending. Subscribers are notified of every change.
//
// Completed and cancelled orders are released once the database confirms
// them and nothing is pending, so the store only holds live orders. Reads
// of a terminal order go to the database.
package orderstore

import (
	"context"
	"log/slog"
	"sync"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// Snapshot is the current view of one order.
type Snapshot struct {
	// Order is the optimistic order when one exists, otherwise the authoritative one.
	Order *order.Order
	// ConfirmedStatus is the status last confirmed by the database.
	ConfirmedStatus order.Status
	// Pending counts commits accepted but not yet finished.
	Pending int
	// Stale is set after a failed commit until the next refresh.
	Stale bool
}

// Optimistic reports whether the view differs from what the database confirmed.
func (s Snapshot) Optimistic() bool {
	return s.Pending > 0 || s.Stale
}

type Store struct {
	logger *slog.Logger

	mu            sync.RWMutex
	authoritative map[kernel.UUID]*order.Order
	optimistic    map[kernel.UUID]*order.Order
	pending       map[kernel.UUID]int
	stale         map[kernel.UUID]struct{}

	subMu       sync.Mutex
	subscribers map[int]*subscription
	nextSubID   int
}

func New(logger *slog.Logger) *Store {
	return &Store{
		logger:        logger.With("component", "order_store"),
		authoritative: make(map[kernel.UUID]*order.Order),
		optimistic:    make(map[kernel.UUID]*order.Order),
		pending:       make(map[kernel.UUID]int),
		stale:         make(map[kernel.UUID]struct{}),
		subscribers:   make(map[int]*subscription),
	}
}

// Get returns a copy of the order as callers should see it.
func (s *Store) Get(id kernel.UUID) (*order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o := s.current(id)
	if o == nil {
		return nil, false
	}
	return o.Clone(), true
}

// Snapshot returns the view of one order together with its reconciliation state.
func (s *Store) Snapshot(id kernel.UUID) (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o := s.current(id)
	if o == nil {
		return Snapshot{}, false
	}
	snap := Snapshot{
		Order:   o.Clone(),
		Pending: s.pending[id],
	}
	if a, ok := s.authoritative[id]; ok {
		snap.ConfirmedStatus = a.Status()
	}
	_, snap.Stale = s.stale[id]
	return snap, true
}

// Seed records a freshly loaded order unless the store already tracks it.
// It reports whether the order was stored.
func (s *Store) Seed(o *order.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authoritative[o.ID()]; ok {
		return false
	}
	if _, ok := s.optimistic[o.ID()]; ok {
		return false
	}
	s.authoritative[o.ID()] = o.Clone()
	return true
}

// FetchFunc loads the database state of one order.
type FetchFunc func(ctx context.Context, id kernel.UUID) (*order.Order, error)

// Load returns the snapshot of id, fetching and seeding the order first when
// the store does not track it yet. Errors from fetch are returned unchanged.
func (s *Store) Load(ctx context.Context, id kernel.UUID, fetch FetchFunc) (Snapshot, error) {
	if snap, ok := s.Snapshot(id); ok {
		return snap, nil
	}

	o, err := fetch(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}
	if o.Status().IsTerminal() {
		return Snapshot{Order: o.Clone(), ConfirmedStatus: o.Status()}, nil
	}
	s.Seed(o)

	snap, ok := s.Snapshot(id)
	if !ok {
		return Snapshot{}, errs.NewObjectNotFoundError("order", id.String())
	}
	return snap, nil
}

// Update applies mutate to a copy of the current view and installs the
// result as the optimistic order. The current view is read and replaced
// under one lock, so concurrent updates of one order serialize. If mutate
// fails nothing changes.
func (s *Store) Update(id kernel.UUID, mutate func(o *order.Order) error) (*order.Order, error) {
	s.mu.Lock()
	base := s.current(id)
	if base == nil {
		s.mu.Unlock()
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	next := base.Clone()
	if err := mutate(next); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.optimistic[id] = next
	s.pending[id]++
	s.mu.Unlock()

	s.publish(Event{Type: EventOptimistic, OrderID: id, Status: next.Status()})
	return next.Clone(), nil
}

// Confirm records the order as committed by the database. The optimistic
// layer is dropped once no other commit for the order is pending, and a
// terminal order is released.
func (s *Store) Confirm(o *order.Order) {
	id := o.ID()

	s.mu.Lock()
	s.authoritative[id] = o.Clone()
	s.finishPending(id)
	s.settle(id)
	s.mu.Unlock()

	s.publish(Event{Type: EventConfirmed, OrderID: id, Status: o.Status()})
}

// Fail records a commit that will not complete. The optimistic order stays
// visible and the order is marked stale for the next refresh.
func (s *Store) Fail(id kernel.UUID, cause error) {
	s.mu.Lock()
	s.finishPending(id)
	s.stale[id] = struct{}{}
	status := order.Unknown
	if o := s.current(id); o != nil {
		status = o.Status()
	}
	s.mu.Unlock()

	s.logger.Warn("Order commit failed, optimistic state kept until refresh",
		"order_id", id.String(), "status", status.String(), "error", cause)
	s.publish(Event{Type: EventFailed, OrderID: id, Status: status, Err: cause})
}

// Refresh replaces the authoritative order with database truth. The
// optimistic layer is cleared unless a commit for the order is still pending.
func (s *Store) Refresh(o *order.Order) {
	id := o.ID()

	s.mu.Lock()
	s.authoritative[id] = o.Clone()
	s.settle(id)
	s.mu.Unlock()

	s.publish(Event{Type: EventRefreshed, OrderID: id, Status: o.Status()})
}

// Forget drops an order that no longer exists in the database.
func (s *Store) Forget(id kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending[id] > 0 {
		return
	}
	delete(s.authoritative, id)
	delete(s.optimistic, id)
	delete(s.stale, id)
}

// Stale lists orders whose last commit failed.
func (s *Store) Stale() []kernel.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]kernel.UUID, 0, len(s.stale))
	for id := range s.stale {
		ids = append(ids, id)
	}
	return ids
}

func (s *Store) current(id kernel.UUID) *order.Order {
	if o, ok := s.optimistic[id]; ok {
		return o
	}
	return s.authoritative[id]
}

// settle drops the optimistic layer of an order with no pending commit, and
// the order itself once the database holds it in a terminal status.
func (s *Store) settle(id kernel.UUID) {
	if s.pending[id] > 0 {
		return
	}
	delete(s.optimistic, id)
	delete(s.stale, id)
	if s.authoritative[id].Status().IsTerminal() {
		delete(s.authoritative, id)
	}
}

func (s *Store) finishPending(id kernel.UUID) {
	if s.pending[id] <= 1 {
		delete(s.pending, id)
		return
	}
	s.pending[id]--
}
