package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

// ResyncOrdersCommand reloads every order whose last commit failed, so the
// optimistic view converges back to what the database holds.
type ResyncOrdersCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrResyncOrdersCommandIsNotConstructed = errors.New(
		"ResyncOrdersCommand must be created via NewResyncOrdersCommand constructor",
	)
)

func NewResyncOrdersCommand() ResyncOrdersCommand {
	return ResyncOrdersCommand{guard: guard.NewConstructorGuard()}
}

func (c ResyncOrdersCommand) Validate() error {
	return c.guard.Validate(ErrResyncOrdersCommandIsNotConstructed)
}
