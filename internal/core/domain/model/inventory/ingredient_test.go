package inventory_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlour(t *testing.T, quantity string) *inventory.Ingredient {
	t.Helper()
	i, err := inventory.NewIngredient(kernel.NewUUID(), "Flour", "g", kernel.MustQuantity(quantity), nil, kernel.NewUUID())
	require.NoError(t, err)
	return i
}

func TestNewIngredient(t *testing.T) {
	t.Run("should create ingredient with default threshold", func(t *testing.T) {
		i := newFlour(t, "500")

		require.NoError(t, i.Validate())
		assert.Equal(t, "Flour", i.Name())
		assert.Equal(t, "g", i.Unit())
		assert.Equal(t, "500", i.Quantity().String())
		assert.True(t, i.Threshold().Equal(inventory.DefaultThreshold))
		assert.Equal(t, "10", i.Threshold().String())
	})

	t.Run("should keep explicit threshold", func(t *testing.T) {
		threshold := kernel.MustQuantity("250")
		i, err := inventory.NewIngredient(kernel.NewUUID(), "Milk", "ml", kernel.MustQuantity("1000"), &threshold, kernel.NewUUID())

		require.NoError(t, err)
		assert.Equal(t, "250", i.Threshold().String())
	})

	t.Run("should trim and require name and unit", func(t *testing.T) {
		_, err := inventory.NewIngredient(kernel.NewUUID(), "  ", "", kernel.ZeroQuantity(), nil, kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, inventory.ErrNameIsRequired)
		require.ErrorIs(t, err, inventory.ErrUnitIsRequired)
	})

	t.Run("should require location", func(t *testing.T) {
		_, err := inventory.NewIngredient(kernel.NewUUID(), "Salt", "g", kernel.ZeroQuantity(), nil, kernel.UUID{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "location")
	})

	t.Run("literal ingredient is not constructed", func(t *testing.T) {
		assert.Equal(t, inventory.ErrIngredientIsNotConstructed, (&inventory.Ingredient{}).Validate())
	})
}

func TestIngredient_Stock(t *testing.T) {
	t.Run("consume within stock", func(t *testing.T) {
		i := newFlour(t, "500")

		deficit := i.Consume(kernel.MustQuantity("200"))

		assert.True(t, deficit.IsZero())
		assert.Equal(t, "300", i.Quantity().String())
	})

	t.Run("consume clamps at zero and reports deficit", func(t *testing.T) {
		i := newFlour(t, "500")

		deficit := i.Consume(kernel.MustQuantity("900"))

		assert.True(t, i.Quantity().IsZero())
		assert.True(t, deficit.Equal(decimal.NewFromInt(400)))
	})

	t.Run("replenish is unbounded", func(t *testing.T) {
		i := newFlour(t, "0")

		i.Replenish(kernel.MustQuantity("900"))

		assert.Equal(t, "900", i.Quantity().String())
	})

	t.Run("covers", func(t *testing.T) {
		i := newFlour(t, "500")

		assert.True(t, i.Covers(kernel.MustQuantity("500")))
		assert.False(t, i.Covers(kernel.MustQuantity("500.01")))
	})

	t.Run("low stock at or below threshold", func(t *testing.T) {
		i := newFlour(t, "11")
		assert.False(t, i.IsLowStock())

		i.SetQuantity(kernel.MustQuantity("10"))
		assert.True(t, i.IsLowStock())
	})

	t.Run("clone is independent", func(t *testing.T) {
		i := newFlour(t, "5")
		c := i.Clone()
		c.Replenish(kernel.MustQuantity("5"))

		assert.Equal(t, "5", i.Quantity().String())
		assert.Equal(t, "10", c.Quantity().String())
	})
}
