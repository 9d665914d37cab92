package inventory

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	ErrUnitIsRequired = errs.NewValueIsRequiredError("unit")

	// ErrIngredientIsNotConstructed is returned when using an improperly initialized Ingredient.
	ErrIngredientIsNotConstructed = errors.New("Ingredient must be created via NewIngredient constructor")
)

// DefaultThreshold applies when an ingredient is created without a low-stock threshold.
var DefaultThreshold = kernel.MustQuantity("10")

// Ingredient is the stock record of a single ingredient.
//
// Example usage:
//
//	flour, err := inventory.NewIngredient(id, "Flour", "g", kernel.MustQuantity("500"), nil, kitchenID)
//	deficit := flour.Consume(kernel.MustQuantity("900")) // quantity 0, deficit 400
type Ingredient struct {
	id         kernel.UUID
	name       string
	unit       string
	quantity   kernel.Quantity
	threshold  kernel.Quantity
	locationID kernel.UUID
	guard      guard.ConstructorGuard
}

// NewIngredient creates a stock record. A nil threshold selects DefaultThreshold.
func NewIngredient(
	id kernel.UUID,
	name string,
	unit string,
	quantity kernel.Quantity,
	threshold *kernel.Quantity,
	locationID kernel.UUID,
) (*Ingredient, error) {
	ingredient := &Ingredient{
		quantity:  quantity,
		threshold: DefaultThreshold,
		guard:     guard.NewConstructorGuard(),
	}
	if threshold != nil {
		ingredient.threshold = *threshold
	}

	if err := errors.Join(
		ingredient.setID(id),
		ingredient.setName(name),
		ingredient.setUnit(unit),
		ingredient.setLocation(locationID),
	); err != nil {
		return nil, err
	}

	return ingredient, nil
}

func (i *Ingredient) Validate() error {
	if i == nil {
		return ErrIngredientIsNotConstructed
	}
	return i.guard.Validate(ErrIngredientIsNotConstructed)
}

func (i *Ingredient) ID() kernel.UUID {
	return i.id
}

func (i *Ingredient) Name() string {
	return i.name
}

func (i *Ingredient) Unit() string {
	return i.unit
}

func (i *Ingredient) Quantity() kernel.Quantity {
	return i.quantity
}

func (i *Ingredient) Threshold() kernel.Quantity {
	return i.threshold
}

func (i *Ingredient) LocationID() kernel.UUID {
	return i.locationID
}

// IsLowStock reports whether quantity <= threshold.
func (i *Ingredient) IsLowStock() bool {
	return i.quantity.LessThanOrEqual(i.threshold)
}

// Covers reports whether the stock on hand satisfies required.
func (i *Ingredient) Covers(required kernel.Quantity) bool {
	return !i.quantity.LessThan(required)
}

// Consume removes amount from stock, flooring at zero. It returns the part
// of amount that could not be taken.
func (i *Ingredient) Consume(amount kernel.Quantity) decimal.Decimal {
	rest, deficit := i.quantity.SubFloor(amount)
	i.quantity = rest
	return deficit
}

// Replenish adds amount to stock. There is no upper bound.
func (i *Ingredient) Replenish(amount kernel.Quantity) {
	i.quantity = i.quantity.Add(amount)
}

// SetQuantity overwrites the stock on hand, e.g. after a manual count.
func (i *Ingredient) SetQuantity(quantity kernel.Quantity) {
	i.quantity = quantity
}

// Clone returns an independent copy.
func (i *Ingredient) Clone() *Ingredient {
	c := *i
	return &c
}

func (i *Ingredient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Ingredient) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Ingredient) setUnit(unit string) error {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return ErrUnitIsRequired
	}
	i.unit = unit
	return nil
}

func (i *Ingredient) setLocation(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("location", err)
	}
	i.locationID = locationID
	return nil
}
