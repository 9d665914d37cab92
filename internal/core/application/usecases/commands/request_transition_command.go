package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRequestTransitionCommandIsNotConstructed = errors.New(
		"RequestTransitionCommand must be created via NewRequestTransitionCommand constructor",
	)
	ErrChefOnlyOnAccept = errs.NewValueIsInvalidErrorWithCause("chefId",
		errors.New("a chef can only be assigned when accepting"))
)

// RequestTransitionCommand asks for one status transition of an order.
//
// RestoreInventory applies to revert only: the order's ingredients are put
// back into stock when they were reserved. ChefID applies to accept only.
//
// Example:
//
//	cmd, err := NewRequestTransitionCommand(orderID, order.Revert, true, nil)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type RequestTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	action           order.Action
	restoreInventory bool
	chefID           *kernel.UUID

	guard guard.ConstructorGuard
}

func NewRequestTransitionCommand(
	orderID kernel.UUID,
	action order.Action,
	restoreInventory bool,
	chefID *kernel.UUID,
) (RequestTransitionCommand, error) {
	cmd := RequestTransitionCommand{
		restoreInventory: restoreInventory,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAction(action),
		cmd.setChef(action, chefID),
	); err != nil {
		return RequestTransitionCommand{}, err
	}

	return cmd, nil
}

func (c RequestTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestTransitionCommandIsNotConstructed)
}

func (c RequestTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RequestTransitionCommand) Action() order.Action {
	return c.action
}

// RestoreInventory is only ever true for revert commands.
func (c RequestTransitionCommand) RestoreInventory() bool {
	return c.restoreInventory && c.action == order.Revert
}

// ChefID returns a copy of the chef to assign on accept, or nil.
func (c RequestTransitionCommand) ChefID() *kernel.UUID {
	if c.chefID == nil {
		return nil
	}
	id := *c.chefID
	return &id
}

func (c *RequestTransitionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestTransitionCommand) setAction(action order.Action) error {
	if err := action.Validate(); err != nil {
		return err
	}

	c.action = action
	return nil
}

func (c *RequestTransitionCommand) setChef(action order.Action, chefID *kernel.UUID) error {
	if chefID == nil {
		return nil
	}
	if action != order.Accept {
		return ErrChefOnlyOnAccept
	}
	if err := chefID.Validate(); err != nil {
		return err
	}

	id := *chefID
	c.chefID = &id
	return nil
}
