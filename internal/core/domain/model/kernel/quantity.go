package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Quantity is a non-negative amount of an ingredient expressed in the
// ingredient's own unit. It is backed by decimal.Decimal so that summing
// requirements and scaling recipes never loses precision.
//
// The zero value is a valid quantity of 0.
type Quantity struct {
	value decimal.Decimal
}

// ZeroQuantity returns a quantity of 0.
func ZeroQuantity() Quantity {
	return Quantity{value: decimal.Zero}
}

// NewQuantity validates that value is not negative.
func NewQuantity(value decimal.Decimal) (Quantity, error) {
	if value.IsNegative() {
		return Quantity{}, errs.NewValueIsOutOfRangeError("quantity", value.String(), 0, "unbounded")
	}
	return Quantity{value: value}, nil
}

// QuantityFromString parses a decimal literal such as "2.5".
func QuantityFromString(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%q: %w", s, err))
	}
	return NewQuantity(d)
}

// QuantityFromInt is a shorthand for whole-unit amounts.
func QuantityFromInt(n int64) (Quantity, error) {
	return NewQuantity(decimal.NewFromInt(n))
}

// MustQuantity panics on a negative value. Use it only for constants.
func MustQuantity(s string) Quantity {
	q, err := QuantityFromString(s)
	if err != nil {
		panic(err)
	}
	return q
}

func (q Quantity) Decimal() decimal.Decimal {
	return q.value
}

func (q Quantity) String() string {
	return q.value.String()
}

func (q Quantity) IsZero() bool {
	return q.value.IsZero()
}

func (q Quantity) IsPositive() bool {
	return q.value.IsPositive()
}

func (q Quantity) Equal(other Quantity) bool {
	return q.value.Equal(other.value)
}

func (q Quantity) LessThan(other Quantity) bool {
	return q.value.LessThan(other.value)
}

func (q Quantity) LessThanOrEqual(other Quantity) bool {
	return q.value.LessThanOrEqual(other.value)
}

// Add returns q + other.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value.Add(other.value)}
}

// Times multiplies by a non-negative whole factor, e.g. an item quantity.
func (q Quantity) Times(n int) Quantity {
	if n <= 0 {
		return ZeroQuantity()
	}
	return Quantity{value: q.value.Mul(decimal.NewFromInt(int64(n)))}
}

// SubFloor returns max(q - other, 0) together with the part of other that
// could not be taken because q ran out.
func (q Quantity) SubFloor(other Quantity) (Quantity, decimal.Decimal) {
	diff := q.value.Sub(other.value)
	if diff.IsNegative() {
		return ZeroQuantity(), diff.Neg()
	}
	return Quantity{value: diff}, decimal.Zero
}

// Diff returns q - other as a signed decimal.
func (q Quantity) Diff(other Quantity) decimal.Decimal {
	return q.value.Sub(other.value)
}

// MarshalText renders the quantity as a decimal string.
func (q Quantity) MarshalText() ([]byte, error) {
	return []byte(q.value.String()), nil
}

func (q *Quantity) UnmarshalText(data []byte) error {
	parsed, err := QuantityFromString(string(data))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
