package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetLowStockIngredientsQueryIsNotConstructed = errors.New(
		"GetLowStockIngredientsQuery must be created via NewGetLowStockIngredientsQuery constructor",
	)
)

// GetLowStockIngredientsQuery lists ingredients at or below their threshold.
type GetLowStockIngredientsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetLowStockIngredientsQuery() GetLowStockIngredientsQuery {
	return GetLowStockIngredientsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetLowStockIngredientsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockIngredientsQueryIsNotConstructed)
}

type GetLowStockIngredientsQueryResponse struct {
	ID         kernel.UUID     `json:"id"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	Quantity   decimal.Decimal `json:"quantity"`
	Threshold  decimal.Decimal `json:"threshold"`
	LocationID kernel.UUID     `json:"locationId"`
}
