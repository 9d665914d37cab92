package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

// RefreshLowStockCommand reports ingredients at or below their threshold and
// writes them to the stock cache.
type RefreshLowStockCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrRefreshLowStockCommandIsNotConstructed = errors.New(
		"RefreshLowStockCommand must be created via NewRefreshLowStockCommand constructor",
	)
)

func NewRefreshLowStockCommand() RefreshLowStockCommand {
	return RefreshLowStockCommand{guard: guard.NewConstructorGuard()}
}

func (c RefreshLowStockCommand) Validate() error {
	return c.guard.Validate(ErrRefreshLowStockCommandIsNotConstructed)
}
