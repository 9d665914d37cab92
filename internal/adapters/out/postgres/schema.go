package postgres

import (
	"fulfillment/internal/adapters/out/postgres/ingredientrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/reciperepo"
	"fulfillment/internal/adapters/out/postgres/settingsrepo"

	"gorm.io/gorm"
)

// Models lists the persisted DTOs in dependency order.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{},
		&reciperepo.RecipeDTO{}, &reciperepo.RequirementDTO{},
		&ingredientrepo.IngredientDTO{},
		&settingsrepo.SettingDTO{},
	}
}

// AutoMigrate creates the tables, or adds missing columns to them.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
