package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads active orders straight from the database.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns active orders sorted by id, each with its item total.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active := []int{int(order.Pending), int(order.Accepted), int(order.InProgress)}
	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.chef_id,
			o.reserved,
			COALESCE(SUM(i.price * i.quantity), 0) AS total
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status IN ?
		GROUP BY o.id, o.status, o.chef_id, o.reserved
		ORDER BY o.id
	`, active).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id       uuid.UUID
			status   int
			chefID   *uuid.UUID
			reserved bool
			total    decimal.Decimal
		)
		if err = rows.Scan(&id, &status, &chefID, &reserved, &total); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp := GetActiveOrdersQueryResponse{
			ID:       orderID,
			Status:   order.Status(status),
			Reserved: reserved,
			Total:    total,
		}
		if chefID != nil {
			chef, chefErr := kernel.UUIDFromBytes(chefID[:])
			if chefErr != nil {
				return nil, chefErr
			}
			resp.ChefID = &chef
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
