package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCheckAvailabilityQueryIsNotConstructed = errors.New(
		"CheckAvailabilityQuery must be created via NewCheckAvailabilityQuery constructor",
	)
)

// CheckAvailabilityQuery asks whether current stock covers an order.
// Nothing is reserved.
type CheckAvailabilityQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewCheckAvailabilityQuery(orderID kernel.UUID) (CheckAvailabilityQuery, error) {
	if err := orderID.Validate(); err != nil {
		return CheckAvailabilityQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	return CheckAvailabilityQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q CheckAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckAvailabilityQueryIsNotConstructed)
}

func (q CheckAvailabilityQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CheckAvailabilityQueryResponse carries the checker verdict. FromCache is set
// when stock came from the cache because the database was rate limiting.
type CheckAvailabilityQueryResponse struct {
	OrderID   kernel.UUID         `json:"orderId"`
	Status    order.Status        `json:"status"`
	OK        bool                `json:"ok"`
	Reason    string              `json:"reason,omitempty"`
	Shortages []services.Shortage `json:"shortages"`
	FromCache bool                `json:"fromCache"`
}
