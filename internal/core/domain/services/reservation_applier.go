package services

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Direction selects whether a reservation takes stock or gives it back.
type Direction int

const (
	// Decrement takes the order's ingredients out of stock, flooring at zero.
	Decrement Direction = iota + 1
	// Increment puts them back. There is no upper bound.
	Increment
)

func (d Direction) String() string {
	switch d {
	case Decrement:
		return "decrement"
	case Increment:
		return "increment"
	default:
		return "unknown"
	}
}

// StockChange is the outcome of a reservation for one ingredient.
type StockChange struct {
	IngredientID kernel.UUID
	Previous     kernel.Quantity
	New          kernel.Quantity
	// Deficit is the part of a decrement that could not be taken because
	// stock hit zero. It is always zero for increments.
	Deficit decimal.Decimal
}

// Delta is the signed change applied to the ingredient.
func (c StockChange) Delta() decimal.Decimal {
	return c.New.Diff(c.Previous)
}

// ReservationApplier applies an order's accumulated requirements to stock.
//
// Business rules:
//   - Requirements are summed first, so each ingredient changes exactly once
//     per call even when several items use it
//   - Every ingredient must be present in stock before anything is mutated
//   - Decrement clamps at zero and reports the deficit; Increment is unbounded
//
// Apply mutates the ingredients held in stock. Persisting them in one
// transaction is the caller's job.
type ReservationApplier struct{}

func NewReservationApplier() ReservationApplier {
	return ReservationApplier{}
}

func (ReservationApplier) Apply(o *order.Order, book RecipeBook, stock Stock, direction Direction) ([]StockChange, error) {
	if direction != Decrement && direction != Increment {
		return nil, errs.NewValueIsInvalidErrorWithCause("direction", fmt.Errorf("%d is not a valid direction", direction))
	}

	reqs, err := RequirementsOf(o, book)
	if err != nil {
		return nil, err
	}
	for _, req := range reqs {
		if _, ok := stock[req.IngredientID]; !ok {
			return nil, errs.NewObjectNotFoundError("ingredient", req.IngredientID.String())
		}
	}

	changes := make([]StockChange, 0, len(reqs))
	for _, req := range reqs {
		ingredient := stock[req.IngredientID]
		change := StockChange{
			IngredientID: req.IngredientID,
			Previous:     ingredient.Quantity(),
			Deficit:      decimal.Zero,
		}
		if direction == Decrement {
			change.Deficit = ingredient.Consume(req.Quantity)
		} else {
			ingredient.Replenish(req.Quantity)
		}
		change.New = ingredient.Quantity()
		changes = append(changes, change)
	}
	return changes, nil
}
