// Package reciperepo persists recipes and their ingredient requirements.
package reciperepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/recipe"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecipeDTO represents the database structure for persisting recipes.
// A menu item has at most one recipe.
type RecipeDTO struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primaryKey"`
	MenuItemID         uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex"`
	StandardServingPax int              `gorm:"not null"`
	Requirements       []RequirementDTO `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

func (RecipeDTO) TableName() string {
	return "recipes"
}

// RequirementDTO is one ingredient line of a recipe.
type RequirementDTO struct {
	RecipeID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	IngredientID      uuid.UUID       `gorm:"type:uuid;primaryKey;index"`
	Position          int             `gorm:"not null"`
	QuantityForRecipe decimal.Decimal `gorm:"type:numeric(14,4);not null"`
}

func (RequirementDTO) TableName() string {
	return "recipe_ingredients"
}

func fromDomain(r *recipe.Recipe) RecipeDTO {
	recipeID := r.ID().Bytes()

	reqs := make([]RequirementDTO, 0, len(r.Requirements()))
	for i, req := range r.Requirements() {
		reqs = append(reqs, RequirementDTO{
			RecipeID:          recipeID,
			IngredientID:      req.IngredientID().Bytes(),
			Position:          i,
			QuantityForRecipe: req.Quantity().Decimal(),
		})
	}

	return RecipeDTO{
		ID:                 recipeID,
		MenuItemID:         r.MenuItemID().Bytes(),
		StandardServingPax: r.StandardServingPax(),
		Requirements:       reqs,
	}
}

// toDomain expects requirements loaded in position order.
func toDomain(dto RecipeDTO) (*recipe.Recipe, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	reqs := make([]recipe.Requirement, 0, len(dto.Requirements))
	for _, reqDTO := range dto.Requirements {
		ingredientID, idErr := kernel.UUIDFromBytes(reqDTO.IngredientID[:])
		if idErr != nil {
			return nil, idErr
		}
		quantity, qErr := kernel.NewQuantity(reqDTO.QuantityForRecipe)
		if qErr != nil {
			return nil, qErr
		}
		req, reqErr := recipe.NewRequirement(ingredientID, quantity)
		if reqErr != nil {
			return nil, reqErr
		}
		reqs = append(reqs, req)
	}

	return recipe.NewRecipe(id, menuItemID, dto.StandardServingPax, reqs)
}
