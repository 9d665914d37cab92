// Package ingredientrepo persists ingredient stock.
package ingredientrepo

import (
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngredientDTO represents the database structure for persisting ingredients.
// The check constraint backs the never-negative stock invariant.
type IngredientDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Unit       string          `gorm:"type:varchar(32);not null"`
	Quantity   decimal.Decimal `gorm:"type:numeric(14,4);not null;check:quantity >= 0"`
	Threshold  decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	LocationID uuid.UUID       `gorm:"type:uuid;not null;index"`
}

func (IngredientDTO) TableName() string {
	return "ingredients"
}

func fromDomain(i *inventory.Ingredient) IngredientDTO {
	return IngredientDTO{
		ID:         i.ID().Bytes(),
		Name:       i.Name(),
		Unit:       i.Unit(),
		Quantity:   i.Quantity().Decimal(),
		Threshold:  i.Threshold().Decimal(),
		LocationID: i.LocationID().Bytes(),
	}
}

func toDomain(dto IngredientDTO) (*inventory.Ingredient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}
	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}
	threshold, err := kernel.NewQuantity(dto.Threshold)
	if err != nil {
		return nil, err
	}

	return inventory.NewIngredient(id, dto.Name, dto.Unit, quantity, &threshold, locationID)
}
