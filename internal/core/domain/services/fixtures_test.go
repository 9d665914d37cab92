package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/recipe"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func ingredient(t testing.TB, name, unit, quantity string) *inventory.Ingredient {
	t.Helper()
	i, err := inventory.NewIngredient(kernel.NewUUID(), name, unit, kernel.MustQuantity(quantity), nil, kernel.NewUUID())
	require.NoError(t, err)
	return i
}

type need struct {
	ingredient *inventory.Ingredient
	quantity   string
}

func newRecipe(t testing.TB, pax int, needs ...need) *recipe.Recipe {
	t.Helper()
	reqs := make([]recipe.Requirement, 0, len(needs))
	for _, n := range needs {
		req, err := recipe.NewRequirement(n.ingredient.ID(), kernel.MustQuantity(n.quantity))
		require.NoError(t, err)
		reqs = append(reqs, req)
	}
	r, err := recipe.NewRecipe(kernel.NewUUID(), kernel.NewUUID(), pax, reqs)
	require.NoError(t, err)
	return r
}

type line struct {
	recipe   *recipe.Recipe
	quantity int
}

func newOrder(t testing.TB, lines ...line) *order.Order {
	t.Helper()
	items := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		item, err := order.NewItem(l.recipe.MenuItemID(), l.quantity, decimal.NewFromInt(5))
		require.NoError(t, err)
		items = append(items, item)
	}
	o, err := order.NewOrder(kernel.NewUUID(), items)
	require.NoError(t, err)
	return o
}
