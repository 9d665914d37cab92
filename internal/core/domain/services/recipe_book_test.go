package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/recipe"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeBook(t *testing.T) {
	flour := ingredient(t, "Flour", "g", "1000")
	pizza := newRecipe(t, 2, need{flour, "300"})

	t.Run("should resolve requirements by menu item", func(t *testing.T) {
		book, err := services.NewRecipeBook(pizza)
		require.NoError(t, err)

		reqs, err := book.RequirementsFor(pizza.MenuItemID())

		require.NoError(t, err)
		require.Len(t, reqs, 1)
		assert.True(t, reqs[0].IngredientID().IsEqual(flour.ID()))
		assert.Equal(t, 1, book.Len())
	})

	t.Run("should fail for unknown menu item", func(t *testing.T) {
		book, err := services.NewRecipeBook(pizza)
		require.NoError(t, err)

		_, err = book.RequirementsFor(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "recipe", notFound.ParamName)
	})

	t.Run("should reject two recipes for one menu item", func(t *testing.T) {
		clash, err := recipe.NewRecipe(kernel.NewUUID(), pizza.MenuItemID(), 1, nil)
		require.NoError(t, err)

		_, err = services.NewRecipeBook(pizza, clash)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRequirementsOf(t *testing.T) {
	flour := ingredient(t, "Flour", "g", "1000")
	cheese := ingredient(t, "Cheese", "g", "1000")
	pizza := newRecipe(t, 2, need{flour, "300"}, need{cheese, "100"})
	bread := newRecipe(t, 4, need{flour, "250"})
	book, err := services.NewRecipeBook(pizza, bread)
	require.NoError(t, err)

	t.Run("should sum shared ingredients across items without pax division", func(t *testing.T) {
		o := newOrder(t, line{pizza, 3}, line{bread, 2})

		reqs, err := services.RequirementsOf(o, book)

		require.NoError(t, err)
		require.Len(t, reqs, 2)
		assert.True(t, reqs[0].IngredientID.IsEqual(flour.ID()))
		assert.Equal(t, "1400", reqs[0].Quantity.String())
		assert.True(t, reqs[1].IngredientID.IsEqual(cheese.ID()))
		assert.Equal(t, "300", reqs[1].Quantity.String())
	})

	t.Run("should list ingredient ids", func(t *testing.T) {
		ids, err := services.IngredientIDsOf(newOrder(t, line{bread, 1}), book)

		require.NoError(t, err)
		require.Len(t, ids, 1)
		assert.True(t, ids[0].IsEqual(flour.ID()))
	})
}
