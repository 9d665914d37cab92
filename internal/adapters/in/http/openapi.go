package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"fulfillment/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

const docsInstance = "fulfillment"

var docsOnce sync.Once

// apiDocs hands the OpenAPI document to swag for the docs UI.
type apiDocs struct {
	doc string
}

func (d apiDocs) ReadDoc() string {
	return d.doc
}

// registerDocs publishes swagger under docsInstance. Only the first call
// registers; swag rejects duplicate names.
func registerDocs(swagger *openapi3.T) error {
	data, err := swagger.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode api document: %w", err)
	}
	docsOnce.Do(func() {
		swag.Register(docsInstance, apiDocs{doc: string(data)})
	})
	return nil
}

// RequestValidator rejects requests that do not match swagger with 400 before
// they reach a handler. Paths the document does not describe pass through.
func RequestValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	// Match on the request path alone, whatever host serves it.
	swagger.Servers = nil

	router, err := legacy.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("build request router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return c.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(err),
				})
			}
			return next(c)
		}
	}, nil
}

// validationMessage names the offending parameter or body field without
// echoing the schema.
func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return err.Error()
	}

	var schemaErr *openapi3.SchemaError
	if !errors.As(reqErr.Err, &schemaErr) {
		return reqErr.Error()
	}

	switch field := strings.Join(schemaErr.JSONPointer(), "."); {
	case reqErr.Parameter != nil:
		return fmt.Sprintf("parameter %q: %s", reqErr.Parameter.Name, schemaErr.Reason)
	case field != "":
		return fmt.Sprintf("body field %q: %s", field, schemaErr.Reason)
	default:
		return "body: " + schemaErr.Reason
	}
}
