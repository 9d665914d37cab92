package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item literal bypassed NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order: how many units of a menu item were ordered
// and the unit price charged for each.
type Item struct {
	menuItemID    kernel.UUID
	quantity      int
	price         decimal.Decimal
	isConstructed bool
}

// NewItem validates a line item. Quantity must be positive and price must
// not be negative.
func NewItem(menuItemID kernel.UUID, quantity int, price decimal.Decimal) (Item, error) {
	var quantityErr, priceErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if price.IsNegative() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%s is negative", price))
	}
	if err := errors.Join(menuItemID.Validate(), quantityErr, priceErr); err != nil {
		return Item{}, err
	}

	return Item{
		menuItemID:    menuItemID,
		quantity:      quantity,
		price:         price,
		isConstructed: true,
	}, nil
}

func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) Price() decimal.Decimal {
	return i.price
}

// Subtotal is price × quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}
