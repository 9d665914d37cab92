package queries

import (
	"context"

	"fulfillment/internal/core/application/orderstore"
	"fulfillment/internal/core/domain/services"
)

type CheckAvailabilityQueryHandler struct {
	views   OrderViews
	fetch   orderstore.FetchFunc
	loader  CatalogLoader
	checker services.AvailabilityChecker
}

func NewCheckAvailabilityQueryHandler(
	views OrderViews,
	fetch orderstore.FetchFunc,
	loader CatalogLoader,
) CheckAvailabilityQueryHandler {
	return CheckAvailabilityQueryHandler{
		views:   views,
		fetch:   fetch,
		loader:  loader,
		checker: services.NewAvailabilityChecker(),
	}
}

// Handle checks the order as currently viewed. A missing recipe or ingredient
// returns the failed verdict together with a not-found error.
func (h CheckAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query CheckAvailabilityQuery,
) (*CheckAvailabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.views.Load(ctx, query.OrderID(), h.fetch)
	if err != nil {
		return nil, err
	}
	o := snapshot.Order

	catalogSnapshot, err := h.loader.ForOrder(ctx, o)
	if err != nil {
		return nil, err
	}

	result, err := h.checker.Check(o, catalogSnapshot.Book, catalogSnapshot.Stock)
	response := &CheckAvailabilityQueryResponse{
		OrderID:   o.ID(),
		Status:    o.Status(),
		OK:        result.OK,
		Reason:    result.Reason,
		Shortages: result.Shortages,
		FromCache: catalogSnapshot.FromCache,
	}
	if response.Shortages == nil {
		response.Shortages = []services.Shortage{}
	}
	return response, err
}
