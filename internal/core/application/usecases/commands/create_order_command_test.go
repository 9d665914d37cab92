package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLines() []commands.OrderLine {
	return []commands.OrderLine{
		{MenuItemID: kernel.NewUUID(), Quantity: 2, Price: decimal.NewFromInt(12)},
		{MenuItemID: kernel.NewUUID(), Quantity: 1, Price: decimal.RequireFromString("4.50")},
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	lines := validLines()
	cmd, err := commands.NewCreateOrderCommand(id, lines)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	require.Len(t, cmd.Items(), 2)
	assert.Equal(t, lines[0].MenuItemID, cmd.Items()[0].MenuItemID())
	assert.Equal(t, 2, cmd.Items()[0].Quantity())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, validLines())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewCreateOrderCommand_InvalidLines(t *testing.T) {
	lines := []commands.OrderLine{
		{MenuItemID: kernel.NewUUID(), Quantity: 0, Price: decimal.NewFromInt(1)},
		{MenuItemID: kernel.NewUUID(), Quantity: 1, Price: decimal.NewFromInt(-1)},
	}
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderCommand_ItemsReturnsCopy(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), validLines())
	require.NoError(t, err)

	items := cmd.Items()
	items[0] = items[1]
	assert.NotEqual(t, cmd.Items()[0].MenuItemID(), cmd.Items()[1].MenuItemID())
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
