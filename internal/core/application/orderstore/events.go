package orderstore

import (
	"sync"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

type EventType int

const (
	// EventOptimistic: a transition was accepted and is visible before commit.
	EventOptimistic EventType = iota + 1
	// EventConfirmed: the database committed a transition.
	EventConfirmed
	// EventFailed: a commit failed for good; the order is stale.
	EventFailed
	// EventRefreshed: the order was reloaded from the database.
	EventRefreshed
)

func (t EventType) String() string {
	switch t {
	case EventOptimistic:
		return "optimistic"
	case EventConfirmed:
		return "confirmed"
	case EventFailed:
		return "failed"
	case EventRefreshed:
		return "refreshed"
	default:
		return "unknown"
	}
}

// Event notifies subscribers of a change to one order.
type Event struct {
	Type    EventType
	OrderID kernel.UUID
	Status  order.Status
	Err     error
}

type subscription struct {
	ch   chan Event
	once sync.Once
}

// Subscribe returns a channel of store events and a function that ends the
// subscription and closes the channel. Delivery never blocks the store: when
// the buffer is full the event is dropped for that subscriber.
func (s *Store) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	sub := &subscription{ch: make(chan Event, buffer)}

	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = sub
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		delete(s.subscribers, id)
		s.subMu.Unlock()
		sub.once.Do(func() { close(sub.ch) })
	}
	return sub.ch, cancel
}

func (s *Store) publish(e Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, sub := range s.subscribers {
		select {
		case sub.ch <- e:
		default:
			s.logger.Debug("Dropping store event for slow subscriber",
				"order_id", e.OrderID.String(), "event", e.Type.String())
		}
	}
}
