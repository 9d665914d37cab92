package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetLowStockIngredientsQueryHandler struct {
	db *gorm.DB
}

func NewGetLowStockIngredientsQueryHandler(db *gorm.DB) GetLowStockIngredientsQueryHandler {
	return GetLowStockIngredientsQueryHandler{db: db}
}

// Handle returns low stock ingredients, emptiest first.
func (h GetLowStockIngredientsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockIngredientsQuery,
) ([]GetLowStockIngredientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ingredients := make([]GetLowStockIngredientsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			unit,
			quantity,
			threshold,
			location_id
		FROM ingredients
		WHERE quantity <= threshold
		ORDER BY quantity, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetLowStockIngredientsQueryResponse
		var id, locationID uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.Unit, &resp.Quantity, &resp.Threshold, &locationID); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.LocationID, err = kernel.UUIDFromBytes(locationID[:]); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ingredients, nil
}
