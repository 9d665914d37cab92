package http

import (
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// kernelID converts a bound id. The nil UUID is rejected.
func kernelID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return converted, nil
}

func optionalKernelID(name string, id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernelID(name, *id)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func apiID(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

func optionalAPIID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	converted := apiID(*id)
	return &converted
}

func apiStatus(s order.Status) servers.OrderStatus {
	return servers.OrderStatus(s.String())
}

func toShortages(shortages []services.Shortage) []servers.Shortage {
	out := make([]servers.Shortage, len(shortages))
	for i, s := range shortages {
		out[i] = servers.Shortage{
			IngredientId: apiID(s.IngredientID),
			Name:         s.Name,
			Available:    s.Available.String(),
			Required:     s.Required.String(),
			Unit:         s.Unit,
		}
	}
	return out
}

// toShortageList converts the shortages carried by an insufficient inventory
// error. Anything else yields no list.
func toShortageList(shortages any) *[]servers.Shortage {
	list, ok := shortages.([]services.Shortage)
	if !ok || len(list) == 0 {
		return nil
	}
	out := toShortages(list)
	return &out
}

func toOrderView(v *queries.GetOrderViewQueryResponse) servers.OrderView {
	items := make([]servers.OrderItem, len(v.Items))
	for i, item := range v.Items {
		items[i] = servers.OrderItem{
			MenuItemId: apiID(item.MenuItemID),
			Quantity:   item.Quantity,
			Price:      item.Price.String(),
		}
	}
	return servers.OrderView{
		Id:              apiID(v.ID),
		Status:          apiStatus(v.Status),
		ConfirmedStatus: apiStatus(v.ConfirmedStatus),
		ChefId:          optionalAPIID(v.ChefID),
		Reserved:        v.Reserved,
		Items:           items,
		Total:           v.Total.String(),
		Pending:         v.Pending,
		Stale:           v.Stale,
	}
}

func toActiveOrders(orders []queries.GetActiveOrdersQueryResponse) []servers.ActiveOrder {
	out := make([]servers.ActiveOrder, len(orders))
	for i, o := range orders {
		out[i] = servers.ActiveOrder{
			Id:       apiID(o.ID),
			Status:   apiStatus(o.Status),
			ChefId:   optionalAPIID(o.ChefID),
			Reserved: o.Reserved,
			Total:    o.Total.String(),
		}
	}
	return out
}

func toAvailability(v *queries.CheckAvailabilityQueryResponse) servers.Availability {
	out := servers.Availability{
		OrderId:   apiID(v.OrderID),
		Status:    apiStatus(v.Status),
		Ok:        v.OK,
		Shortages: toShortages(v.Shortages),
		FromCache: v.FromCache,
	}
	if v.Reason != "" {
		reason := v.Reason
		out.Reason = &reason
	}
	return out
}

func toScaledRecipe(r *queries.ScaleRecipeQueryResponse) servers.ScaledRecipe {
	ingredients := make([]servers.ScaledIngredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = servers.ScaledIngredient{
			IngredientId: apiID(ing.IngredientID),
			Name:         ing.Name,
			Unit:         ing.Unit,
			Needed:       ing.Needed.String(),
			Available:    ing.Available.String(),
			Shortage:     ing.Shortage.String(),
			Excess:       ing.Excess.String(),
		}
	}
	return servers.ScaledRecipe{
		RecipeId:           apiID(r.RecipeID),
		MenuItemId:         apiID(r.MenuItemID),
		StandardServingPax: r.StandardServingPax,
		Servings:           r.Servings,
		MaxServings:        r.MaxServings,
		Ingredients:        ingredients,
		FromCache:          r.FromCache,
	}
}

func toLowStock(ingredients []queries.GetLowStockIngredientsQueryResponse) []servers.LowStockIngredient {
	out := make([]servers.LowStockIngredient, len(ingredients))
	for i, ing := range ingredients {
		out[i] = servers.LowStockIngredient{
			Id:         apiID(ing.ID),
			LocationId: apiID(ing.LocationID),
			Name:       ing.Name,
			Unit:       ing.Unit,
			Quantity:   ing.Quantity.String(),
			Threshold:  ing.Threshold.String(),
		}
	}
	return out
}
