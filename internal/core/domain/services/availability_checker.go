package services

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Shortage describes one ingredient whose stock does not cover an order.
type Shortage struct {
	IngredientID kernel.UUID     `json:"ingredientId"`
	Name         string          `json:"name"`
	Available    kernel.Quantity `json:"available"`
	Required     kernel.Quantity `json:"required"`
	Unit         string          `json:"unit"`
}

// Shortfall is required - available.
func (s Shortage) Shortfall() decimal.Decimal {
	return s.Required.Diff(s.Available)
}

// AvailabilityResult is the verdict of AvailabilityChecker.Check.
// OK is true exactly when Shortages is empty and no lookup failed.
type AvailabilityResult struct {
	OK        bool       `json:"ok"`
	Reason    string     `json:"reason,omitempty"`
	Shortages []Shortage `json:"shortages"`
}

// AvailabilityChecker decides whether current stock covers an order.
//
// Algorithm:
//   - sum requirements per ingredient over all items (see RequirementsOf)
//   - look up each ingredient in stock; a missing recipe or ingredient aborts the check
//   - every ingredient with stock < required is reported once, with its exact shortfall
//
// The checker is read-only and can be called concurrently with reservations.
// Its verdict may be stale by the time stock is reserved, so reservation
// commits check again under row locks.
type AvailabilityChecker struct{}

func NewAvailabilityChecker() AvailabilityChecker {
	return AvailabilityChecker{}
}

// Check returns OK=true with no shortages when stock covers o.
//
// A missing recipe or ingredient returns OK=false with Reason set and an
// *errs.ObjectNotFoundError, not a shortage list.
//
// Example:
//
//	result, err := checker.Check(o, book, stock)
//	if err != nil {
//	    return err // not found, hard stop
//	}
//	if !result.OK {
//	    // reject with result.Shortages
//	}
func (AvailabilityChecker) Check(o *order.Order, book RecipeBook, stock Stock) (AvailabilityResult, error) {
	reqs, err := RequirementsOf(o, book)
	if err != nil {
		return failedResult(err), err
	}

	shortages := make([]Shortage, 0)
	for _, req := range reqs {
		ingredient, ok := stock[req.IngredientID]
		if !ok {
			err = errs.NewObjectNotFoundError("ingredient", req.IngredientID.String())
			return failedResult(err), err
		}
		if ingredient.Covers(req.Quantity) {
			continue
		}
		shortages = append(shortages, Shortage{
			IngredientID: req.IngredientID,
			Name:         ingredient.Name(),
			Available:    ingredient.Quantity(),
			Required:     req.Quantity,
			Unit:         ingredient.Unit(),
		})
	}

	result := AvailabilityResult{OK: len(shortages) == 0, Shortages: shortages}
	if !result.OK {
		result.Reason = fmt.Sprintf("%d ingredient(s) short", len(shortages))
	}
	return result, nil
}

func failedResult(err error) AvailabilityResult {
	reason := err.Error()
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		reason = fmt.Sprintf("%s not found: %v", notFound.ParamName, notFound.ID)
	}
	return AvailabilityResult{OK: false, Reason: reason, Shortages: []Shortage{}}
}
