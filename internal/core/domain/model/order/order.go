package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is the cause reported when an order would have an empty item list.
	ErrOrderHasNoItems = errors.New("order has no items")
)

// Order is a customer order moving through the kitchen. It is the aggregate
// root for its items, chef assignment and reservation state.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have at least one item
//   - Status is always one of the five lifecycle states
//   - Status changes only through Transition, which enforces the transition table
//   - Total is derived from the items and never stored
//
// Order is not safe for concurrent mutation. The optimistic store hands out
// clones, so each goroutine works on its own copy.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// chefID is the assigned chef (nil if unassigned)
	chefID *kernel.UUID

	// items are the ordered menu items, never empty
	items []Item

	// status is the current state in the order lifecycle
	status Status

	// reserved is true while the order's ingredients are taken out of stock
	reserved bool

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a pending, unreserved order with no chef.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - items: Order lines, at least one, each built with NewItem
//
// Example:
//
//	item, _ := order.NewItem(burgerID, 3, decimal.RequireFromString("12.50"))
//	o, err := order.NewOrder(kernel.NewUUID(), []order.Item{item})
func NewOrder(id kernel.UUID, items []Item) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. Unlike NewOrder it
// accepts any valid status together with the chef and reserved flag that
// were stored alongside it.
func RestoreOrder(id kernel.UUID, status Status, chefID *kernel.UUID, items []Item, reserved bool) (*Order, error) {
	o := &Order{
		reserved:      reserved,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setStatus(status),
		o.setChef(chefID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Chef returns the assigned chef's ID, or nil if no chef is assigned.
func (o *Order) Chef() *kernel.UUID {
	if o.chefID == nil {
		return nil
	}
	id := *o.chefID
	return &id
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total is the sum of price × quantity over all items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Reserved reports whether the order's ingredients are currently taken out of stock.
func (o *Order) Reserved() bool {
	return o.reserved
}

// Transition applies action to the order.
//
// This method enforces the following business rules:
//   - The action must be known
//   - The move from the current status must be in the transition table
//   - Revert clears the assigned chef
//
// Returns the status the order had before the call. The order is left
// untouched when an error is returned.
//
// Example:
//
//	from, err := o.Transition(order.Accept)
//	if errors.Is(err, order.ErrInvalidTransition) {
//	    // reject synchronously
//	}
func (o *Order) Transition(action Action) (Status, error) {
	if err := action.Validate(); err != nil {
		return Unknown, err
	}

	from := o.status
	next, err := from.TransitionTo(action.Target())
	if err != nil {
		return Unknown, err
	}

	o.status = next
	if action == Revert {
		o.chefID = nil
	}
	return from, nil
}

// AssignChef sets the chef responsible for the order. Terminal orders cannot
// be reassigned.
func (o *Order) AssignChef(chefID kernel.UUID) error {
	if err := chefID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New(o.status.String()+" orders cannot be assigned a chef"))
	}

	o.chefID = &chefID
	return nil
}

// ClearChef removes the chef assignment.
func (o *Order) ClearChef() {
	o.chefID = nil
}

// MarkReserved records that stock was decremented for this order.
func (o *Order) MarkReserved() {
	o.reserved = true
}

// MarkReleased records that stock taken for this order was given back.
func (o *Order) MarkReleased() {
	o.reserved = false
}

// Clone returns a deep copy that can be mutated independently.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	c.chefID = o.Chef()
	c.items = o.Items()
	return &c
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", ErrOrderHasNoItems)
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setChef(chefID *kernel.UUID) error {
	if chefID == nil {
		o.chefID = nil
		return nil
	}
	if err := chefID.Validate(); err != nil {
		return err
	}
	id := *chefID
	o.chefID = &id
	return nil
}
