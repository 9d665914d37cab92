package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusFor maps an engine error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInsufficientInventory):
		return http.StatusConflict
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrRateLimited),
		errors.Is(err, errs.ErrTransientBackend),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c echo.Context, err error) error {
	code := StatusFor(err)
	body := servers.Error{Code: code, Message: err.Error()}

	var shortage *errs.InsufficientInventoryError
	if errors.As(err, &shortage) {
		body.Shortages = toShortageList(shortage.Shortages)
	}

	switch {
	case code == http.StatusInternalServerError:
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		body.Message = http.StatusText(code)
	case errors.Is(err, errs.ErrRateLimited):
		c.Response().Header().Set("Retry-After", "1")
	}

	return c.JSON(code, body)
}

// ErrorHandler renders errors the framework raises itself, such as unknown
// routes or malformed path parameters, in the API error shape.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, servers.Error{Code: code, Message: message})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

func invalidBody(err error) error {
	return errs.NewValueIsInvalidErrorWithCause("body", err)
}
