// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items live in their own table and are written once, when the order is added.
type OrderDTO struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ChefID   *uuid.UUID     `gorm:"type:uuid;index"`
	Status   int            `gorm:"type:smallint;not null;index"`
	Reserved bool           `gorm:"not null;default:false"`
	Items    []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order. Position keeps the order in which
// items were placed, which decides the first-seen order of requirements.
type OrderItemDTO struct {
	OrderID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position   int             `gorm:"primaryKey"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    orderID,
			Position:   i,
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
			Price:      item.Price(),
		})
	}

	return OrderDTO{
		ID:       orderID,
		ChefID:   chefToDTO(o.Chef()),
		Status:   int(o.Status()),
		Reserved: o.Reserved(),
		Items:    items,
	}
}

func chefToDTO(chefID *kernel.UUID) *uuid.UUID {
	if chefID == nil {
		return nil
	}
	raw := chefID.Bytes()
	return &raw
}

// toDomain converts a database DTO to an order domain aggregate.
// Items must be loaded in position order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var chefID *kernel.UUID
	if dto.ChefID != nil {
		cID, chefErr := kernel.UUIDFromBytes((*dto.ChefID)[:])
		if chefErr != nil {
			return nil, chefErr
		}
		chefID = &cID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, idErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.NewItem(menuItemID, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, order.Status(dto.Status), chefID, items, dto.Reserved)
}
