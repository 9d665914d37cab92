package http

import (
	"context"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateOrder handles POST /api/v1/orders - registers a new pending order.
func (s *Server) CreateOrder(c echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return s.fail(c, invalidBody(err))
	}

	orderID := kernel.NewUUID()
	if body.Id != nil {
		id, err := kernelID("id", *body.Id)
		if err != nil {
			return s.fail(c, err)
		}
		orderID = id
	}

	lines := make([]commands.OrderLine, len(body.Items))
	for i, item := range body.Items {
		menuItemID, err := kernelID("menuItemId", item.MenuItemId)
		if err != nil {
			return s.fail(c, err)
		}
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return s.fail(c, errs.NewValueIsInvalidErrorWithCause("price", err))
		}
		lines[i] = commands.OrderLine{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
			Price:      price,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, lines)
	if err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("order", err))
	}

	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/v1/orders/"+orderID.String())
	return c.JSON(http.StatusCreated, servers.CreatedOrder{Id: apiID(orderID)})
}

// GetActiveOrders handles GET /api/v1/orders - lists orders that are not finished.
func (s *Server) GetActiveOrders(c echo.Context) error {
	orders, err := s.handlers.GetActiveOrders.Handle(c.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toActiveOrders(orders))
}

// GetOrder handles GET /api/v1/orders/:id - the order as callers currently see it.
func (s *Server) GetOrder(c echo.Context, id servers.OrderId) error {
	orderID, err := kernelID("id", id)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderViewQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.GetOrderView.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderView(view))
}

// RequestTransition handles POST /api/v1/orders/:id/transitions.
//
// An accepted request answers 202 once the new status is visible; with
// ?wait=true it answers after the commit, or 202 if the request ends first.
// A rejected accept answers 409 with the shortages.
func (s *Server) RequestTransition(c echo.Context, id servers.OrderId, params servers.RequestTransitionParams) error {
	orderID, err := kernelID("id", id)
	if err != nil {
		return s.fail(c, err)
	}

	var body servers.RequestTransitionJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return s.fail(c, invalidBody(err))
	}

	action, err := order.ParseAction(string(body.Action))
	if err != nil {
		return s.fail(c, err)
	}
	chefID, err := optionalKernelID("chefId", body.ChefId)
	if err != nil {
		return s.fail(c, err)
	}
	restore := body.RestoreInventory != nil && *body.RestoreInventory

	cmd, err := commands.NewRequestTransitionCommand(orderID, action, restore, chefID)
	if err != nil {
		return s.fail(c, err)
	}

	ctx := c.Request().Context()
	result, err := s.handlers.RequestTransition.Handle(ctx, cmd)
	if err != nil {
		return s.fail(c, err)
	}
	if !result.Accepted {
		return s.fail(c, result.Err())
	}

	response := servers.Transition{
		OrderId:  apiID(result.OrderID),
		Accepted: true,
		From:     apiStatus(result.From),
		Status:   apiStatus(result.Status),
	}
	if !waitRequested(params.Wait) {
		return c.JSON(http.StatusAccepted, response)
	}

	finished, err := awaitCommit(ctx, result.Done)
	if !finished {
		return c.JSON(http.StatusAccepted, response)
	}
	if err != nil {
		return s.fail(c, err)
	}
	committed := true
	response.Committed = &committed
	return c.JSON(http.StatusOK, response)
}

// AssignChef handles PUT /api/v1/orders/:id/chef. A null chefId clears the chef.
func (s *Server) AssignChef(c echo.Context, id servers.OrderId, params servers.AssignChefParams) error {
	orderID, err := kernelID("id", id)
	if err != nil {
		return s.fail(c, err)
	}

	var body servers.AssignChefJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return s.fail(c, invalidBody(err))
	}
	chefID, err := optionalKernelID("chefId", body.ChefId)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAssignChefCommand(orderID, chefID)
	if err != nil {
		return s.fail(c, err)
	}

	ctx := c.Request().Context()
	done, err := s.handlers.AssignChef.Handle(ctx, cmd)
	if err != nil {
		return s.fail(c, err)
	}

	response := servers.ChefChange{OrderId: apiID(orderID), ChefId: optionalAPIID(cmd.ChefID())}
	if !waitRequested(params.Wait) {
		return c.JSON(http.StatusAccepted, response)
	}

	finished, err := awaitCommit(ctx, done)
	if !finished {
		return c.JSON(http.StatusAccepted, response)
	}
	if err != nil {
		return s.fail(c, err)
	}
	committed := true
	response.Committed = &committed
	return c.JSON(http.StatusOK, response)
}

// CheckAvailability handles GET /api/v1/orders/:id/availability.
// A missing recipe or ingredient still answers 200 with the failed verdict.
func (s *Server) CheckAvailability(c echo.Context, id servers.OrderId) error {
	orderID, err := kernelID("id", id)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewCheckAvailabilityQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	verdict, err := s.handlers.CheckAvailability.Handle(c.Request().Context(), query)
	if verdict == nil {
		return s.fail(c, err)
	}
	if err != nil {
		s.logger.DebugContext(c.Request().Context(), "Availability check incomplete",
			"order_id", orderID.String(),
			"error", err,
		)
	}
	return c.JSON(http.StatusOK, toAvailability(verdict))
}

func waitRequested(wait *servers.Wait) bool {
	return wait != nil && *wait
}

// awaitCommit reports whether done delivered before ctx ended, and the outcome.
func awaitCommit(ctx context.Context, done <-chan error) (bool, error) {
	select {
	case err := <-done:
		return true, err
	case <-ctx.Done():
		return false, nil
	}
}
