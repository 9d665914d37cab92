package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderViewQueryIsNotConstructed = errors.New(
		"GetOrderViewQuery must be created via NewGetOrderViewQuery constructor",
	)
)

// GetOrderViewQuery reads one order as callers currently see it: the
// optimistic status when a commit is in flight, the stored one otherwise.
type GetOrderViewQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderViewQuery(orderID kernel.UUID) (GetOrderViewQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderViewQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	return GetOrderViewQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderViewQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderViewQueryIsNotConstructed)
}

func (q GetOrderViewQuery) OrderID() kernel.UUID {
	return q.orderID
}

type OrderItemView struct {
	MenuItemID kernel.UUID     `json:"menuItemId"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// GetOrderViewQueryResponse describes an order. ConfirmedStatus is what the
// database last acknowledged; Status may run ahead of it while Pending > 0.
type GetOrderViewQueryResponse struct {
	ID              kernel.UUID     `json:"id"`
	Status          order.Status    `json:"status"`
	ConfirmedStatus order.Status    `json:"confirmedStatus"`
	ChefID          *kernel.UUID    `json:"chefId,omitempty"`
	Reserved        bool            `json:"reserved"`
	Items           []OrderItemView `json:"items"`
	Total           decimal.Decimal `json:"total"`
	Pending         int             `json:"pending"`
	Stale           bool            `json:"stale"`
}
