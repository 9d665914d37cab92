package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignChefCommandIsNotConstructed = errors.New(
	"AssignChefCommand must be created via NewAssignChefCommand constructor",
)

// AssignChefCommand sets or clears the chef of an order. A nil chef clears it.
type AssignChefCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	chefID  *kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignChefCommand(orderID kernel.UUID, chefID *kernel.UUID) (AssignChefCommand, error) {
	cmd := AssignChefCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setChefID(chefID),
	); err != nil {
		return AssignChefCommand{}, err
	}

	return cmd, nil
}

func (c AssignChefCommand) Validate() error {
	return c.guard.Validate(ErrAssignChefCommandIsNotConstructed)
}

func (c AssignChefCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ChefID returns a copy of the chef, or nil to clear the assignment.
func (c AssignChefCommand) ChefID() *kernel.UUID {
	if c.chefID == nil {
		return nil
	}
	id := *c.chefID
	return &id
}

func (c *AssignChefCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignChefCommand) setChefID(chefID *kernel.UUID) error {
	if chefID == nil {
		return nil
	}
	if err := chefID.Validate(); err != nil {
		return err
	}

	id := *chefID
	c.chefID = &id
	return nil
}
