package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrScaleRecipeQueryIsNotConstructed = errors.New(
		"ScaleRecipeQuery must be created via NewScaleRecipeQuery constructor",
	)
)

// ScaleRecipeQuery recomputes a recipe for a number of servings and compares
// it with live stock. The servings range is checked by the handler, since the
// upper bound is an operator setting.
type ScaleRecipeQuery struct {
	recipeID kernel.UUID
	servings int
	guard    guard.ConstructorGuard
}

func NewScaleRecipeQuery(recipeID kernel.UUID, servings int) (ScaleRecipeQuery, error) {
	if err := recipeID.Validate(); err != nil {
		return ScaleRecipeQuery{}, errs.NewValueIsRequiredErrorWithCause("recipeID", err)
	}
	return ScaleRecipeQuery{
		recipeID: recipeID,
		servings: servings,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ScaleRecipeQuery) Validate() error {
	return q.guard.Validate(ErrScaleRecipeQueryIsNotConstructed)
}

func (q ScaleRecipeQuery) RecipeID() kernel.UUID {
	return q.recipeID
}

func (q ScaleRecipeQuery) Servings() int {
	return q.servings
}

type ScaleRecipeQueryResponse struct {
	RecipeID           kernel.UUID                 `json:"recipeId"`
	MenuItemID         kernel.UUID                 `json:"menuItemId"`
	StandardServingPax int                         `json:"standardServingPax"`
	Servings           int                         `json:"servings"`
	MaxServings        int                         `json:"maxServings"`
	Ingredients        []services.ScaledIngredient `json:"ingredients"`
	FromCache          bool                        `json:"fromCache"`
}
