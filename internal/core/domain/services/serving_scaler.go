package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/recipe"
	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultMaxServings is the serving limit used until an operator changes it.
const DefaultMaxServings = settings.DefaultMaxServings

// ScaledIngredient is one line of a scaled recipe. At most one of Shortage
// and Excess is non-zero.
type ScaledIngredient struct {
	IngredientID kernel.UUID     `json:"ingredientId"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	Needed       decimal.Decimal `json:"needed"`
	Available    kernel.Quantity `json:"available"`
	Shortage     decimal.Decimal `json:"shortage"`
	Excess       decimal.Decimal `json:"excess"`
}

// ServingScaler recomputes a recipe for a number of servings and compares the
// result with live stock. It is a planning aid: nothing is reserved.
type ServingScaler struct{}

func NewServingScaler() ServingScaler {
	return ServingScaler{}
}

// Scale returns needed = base × servings / standard pax for every requirement
// of r, in declared order. servings must lie in [1, maxServings]. Ingredients
// missing from stock are shown with zero available.
func (ServingScaler) Scale(r *recipe.Recipe, servings, maxServings int, stock Stock) ([]ScaledIngredient, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if servings < 1 || servings > maxServings {
		return nil, errs.NewValueIsOutOfRangeError("servings", servings, 1, maxServings)
	}

	pax := decimal.NewFromInt(int64(r.StandardServingPax()))
	target := decimal.NewFromInt(int64(servings))

	reqs := r.Requirements()
	scaled := make([]ScaledIngredient, 0, len(reqs))
	for _, req := range reqs {
		base := req.Quantity().Decimal()
		needed := base
		if servings != r.StandardServingPax() {
			needed = base.Mul(target).Div(pax)
		}

		line := ScaledIngredient{
			IngredientID: req.IngredientID(),
			Needed:       needed,
			Available:    kernel.ZeroQuantity(),
			Shortage:     decimal.Zero,
			Excess:       decimal.Zero,
		}
		if ingredient, ok := stock[req.IngredientID()]; ok {
			line.Name = ingredient.Name()
			line.Unit = ingredient.Unit()
			line.Available = ingredient.Quantity()
		}

		diff := line.Available.Decimal().Sub(needed)
		if diff.IsNegative() {
			line.Shortage = diff.Neg()
		} else {
			line.Excess = diff
		}
		scaled = append(scaled, line)
	}
	return scaled, nil
}
