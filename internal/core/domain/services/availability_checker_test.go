package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAvailabilityChecker_Check(t *testing.T) {
	checker := services.NewAvailabilityChecker()

	t.Run("flour shortage example", func(t *testing.T) {
		flour := ingredient(t, "Flour", "g", "500")
		r := newRecipe(t, 2, need{flour, "300"})
		book, err := services.NewRecipeBook(r)
		require.NoError(t, err)

		result, err := checker.Check(newOrder(t, line{r, 3}), book, services.NewStock(flour))

		require.NoError(t, err)
		assert.False(t, result.OK)
		require.Len(t, result.Shortages, 1)
		s := result.Shortages[0]
		assert.Equal(t, "Flour", s.Name)
		assert.Equal(t, "500", s.Available.String())
		assert.Equal(t, "900", s.Required.String())
		assert.Equal(t, "g", s.Unit)
		assert.True(t, s.Shortfall().Equal(decimal.NewFromInt(400)))
		assert.NotEmpty(t, result.Reason)
	})

	t.Run("enough stock", func(t *testing.T) {
		flour := ingredient(t, "Flour", "g", "900")
		r := newRecipe(t, 2, need{flour, "300"})
		book, err := services.NewRecipeBook(r)
		require.NoError(t, err)

		result, err := checker.Check(newOrder(t, line{r, 3}), book, services.NewStock(flour))

		require.NoError(t, err)
		assert.True(t, result.OK)
		assert.Empty(t, result.Shortages)
		assert.Empty(t, result.Reason)
	})

	t.Run("shared ingredient is reported once with summed requirement", func(t *testing.T) {
		flour := ingredient(t, "Flour", "g", "500")
		pizza := newRecipe(t, 2, need{flour, "300"})
		bread := newRecipe(t, 1, need{flour, "100"})
		book, err := services.NewRecipeBook(pizza, bread)
		require.NoError(t, err)

		result, err := checker.Check(newOrder(t, line{pizza, 1}, line{bread, 3}), book, services.NewStock(flour))

		require.NoError(t, err)
		require.Len(t, result.Shortages, 1)
		assert.Equal(t, "600", result.Shortages[0].Required.String())
	})

	t.Run("missing recipe aborts the check", func(t *testing.T) {
		flour := ingredient(t, "Flour", "g", "500")
		r := newRecipe(t, 2, need{flour, "300"})
		emptyBook, err := services.NewRecipeBook()
		require.NoError(t, err)

		result, err := checker.Check(newOrder(t, line{r, 1}), emptyBook, services.NewStock(flour))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.False(t, result.OK)
		assert.Empty(t, result.Shortages)
		assert.Contains(t, result.Reason, "recipe not found")
	})

	t.Run("missing ingredient aborts the check", func(t *testing.T) {
		flour := ingredient(t, "Flour", "g", "500")
		r := newRecipe(t, 2, need{flour, "300"})
		book, err := services.NewRecipeBook(r)
		require.NoError(t, err)

		result, err := checker.Check(newOrder(t, line{r, 1}), book, services.NewStock())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.False(t, result.OK)
		assert.Contains(t, result.Reason, "ingredient not found")
	})
}

func TestAvailabilityChecker_Properties(t *testing.T) {
	checker := services.NewAvailabilityChecker()

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 5).Draw(rt, "ingredients")
		ingredients := make([]*inventory.Ingredient, n)
		needs := make([]need, n)
		perUnit := make([]int64, n)
		for i := range n {
			perUnit[i] = rapid.Int64Range(1, 500).Draw(rt, "perUnit")
			stock := rapid.Int64Range(0, 5000).Draw(rt, "stock")
			ingredients[i] = ingredient(t, "ing", "g", decimal.NewFromInt(stock).String())
			needs[i] = need{ingredients[i], decimal.NewFromInt(perUnit[i]).String()}
		}
		r := newRecipe(t, rapid.IntRange(1, 8).Draw(rt, "pax"), needs...)
		book, err := services.NewRecipeBook(r)
		require.NoError(rt, err)
		qty := rapid.IntRange(1, 10).Draw(rt, "qty")

		result, err := checker.Check(newOrder(t, line{r, qty}), book, services.NewStock(ingredients...))
		require.NoError(rt, err)

		short := make(map[kernel.UUID]decimal.Decimal)
		for i, ing := range ingredients {
			required := decimal.NewFromInt(perUnit[i] * int64(qty))
			if ing.Quantity().Decimal().LessThan(required) {
				short[ing.ID()] = required.Sub(ing.Quantity().Decimal())
			}
		}

		if result.OK != (len(short) == 0) {
			rt.Fatalf("ok=%v but %d ingredients short", result.OK, len(short))
		}
		if len(result.Shortages) != len(short) {
			rt.Fatalf("want %d shortages, got %d", len(short), len(result.Shortages))
		}
		for _, s := range result.Shortages {
			want, ok := short[s.IngredientID]
			if !ok {
				rt.Fatalf("unexpected shortage for %s", s.IngredientID)
			}
			if !s.Shortfall().Equal(want) {
				rt.Fatalf("shortfall %s, want %s", s.Shortfall(), want)
			}
			delete(short, s.IngredientID)
		}
	})
}
