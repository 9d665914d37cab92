package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ScaleRecipe handles GET /api/v1/recipes/:id/scale?servings=N.
func (s *Server) ScaleRecipe(c echo.Context, id openapi_types.UUID, params servers.ScaleRecipeParams) error {
	recipeID, err := kernelID("id", id)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewScaleRecipeQuery(recipeID, params.Servings)
	if err != nil {
		return s.fail(c, err)
	}

	scaled, err := s.handlers.ScaleRecipe.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toScaledRecipe(scaled))
}

// GetMaxServings handles GET /api/v1/settings/max-serving-size.
func (s *Server) GetMaxServings(c echo.Context) error {
	current, err := s.handlers.GetMaxServings.Handle(c.Request().Context(), queries.NewGetMaxServingsQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.MaxServings{
		MaxServings: current.MaxServings,
		IsDefault:   current.IsDefault,
	})
}

// SetMaxServings handles PUT /api/v1/settings/max-serving-size. The operator
// token travels in the X-Operator-Token header.
func (s *Server) SetMaxServings(c echo.Context, params servers.SetMaxServingsParams) error {
	var body servers.SetMaxServingsJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return s.fail(c, invalidBody(err))
	}

	var token string
	if params.XOperatorToken != nil {
		token = *params.XOperatorToken
	}

	cmd, err := commands.NewSetMaxServingsCommand(body.MaxServings, token)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.SetMaxServings.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, servers.MaxServings{MaxServings: cmd.Value().Int()})
}

// GetLowStockIngredients handles GET /api/v1/ingredients/low-stock.
func (s *Server) GetLowStockIngredients(c echo.Context) error {
	ingredients, err := s.handlers.GetLowStock.Handle(
		c.Request().Context(),
		queries.NewGetLowStockIngredientsQuery(),
	)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toLowStock(ingredients))
}
