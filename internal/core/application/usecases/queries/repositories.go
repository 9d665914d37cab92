package queries

import (
	"context"

	"fulfillment/internal/core/application/catalog"
	"fulfillment/internal/core/application/orderstore"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/recipe"
)

// OrderViews is the optimistic order view the read side serves from.
type OrderViews interface {
	Load(ctx context.Context, id kernel.UUID, fetch orderstore.FetchFunc) (orderstore.Snapshot, error)
}

// CatalogLoader loads recipes and stock for availability and scaling.
type CatalogLoader interface {
	ForOrder(ctx context.Context, o *order.Order) (catalog.Snapshot, error)
	ForRecipe(ctx context.Context, recipeID kernel.UUID) (*recipe.Recipe, catalog.Snapshot, error)
}
