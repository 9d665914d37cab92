package queries

import (
	"context"

	"fulfillment/internal/core/application/orderstore"
)

type GetOrderViewQueryHandler struct {
	views OrderViews
	fetch orderstore.FetchFunc
}

// NewGetOrderViewQueryHandler builds the handler. fetch reads an order from
// the database when the view does not hold it yet.
func NewGetOrderViewQueryHandler(views OrderViews, fetch orderstore.FetchFunc) GetOrderViewQueryHandler {
	return GetOrderViewQueryHandler{views: views, fetch: fetch}
}

func (h GetOrderViewQueryHandler) Handle(ctx context.Context, query GetOrderViewQuery) (*GetOrderViewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.views.Load(ctx, query.OrderID(), h.fetch)
	if err != nil {
		return nil, err
	}
	return toOrderView(snapshot), nil
}

func toOrderView(s orderstore.Snapshot) *GetOrderViewQueryResponse {
	o := s.Order
	items := make([]OrderItemView, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemView{
			MenuItemID: item.MenuItemID(),
			Quantity:   item.Quantity(),
			Price:      item.Price(),
		})
	}

	return &GetOrderViewQueryResponse{
		ID:              o.ID(),
		Status:          o.Status(),
		ConfirmedStatus: s.ConfirmedStatus,
		ChefID:          o.Chef(),
		Reserved:        o.Reserved(),
		Items:           items,
		Total:           o.Total(),
		Pending:         s.Pending,
		Stale:           s.Stale,
	}
}
