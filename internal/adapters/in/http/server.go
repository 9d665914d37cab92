package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fulfillment/internal/core/application/orderstore"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	// OperatorTokenHeader carries the credential for privileged settings changes.
	OperatorTokenHeader = "X-Operator-Token"

	// DocsPath serves the OpenAPI document and its UI.
	DocsPath = "/swagger/*"

	defaultKeepAlive = 15 * time.Second
	eventBuffer      = 64
)

var _ servers.ServerInterface = (*Server)(nil)

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
}

type RequestTransitionHandler interface {
	Handle(ctx context.Context, cmd commands.RequestTransitionCommand) (commands.TransitionResult, error)
}

type AssignChefHandler interface {
	Handle(ctx context.Context, cmd commands.AssignChefCommand) (<-chan error, error)
}

type SetMaxServingsHandler interface {
	Handle(ctx context.Context, cmd commands.SetMaxServingsCommand) error
}

// QueryHandler is the shape shared by every read use case.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// EventSource publishes order changes for the events stream.
type EventSource interface {
	Subscribe(buffer int) (<-chan orderstore.Event, func())
}

// Handlers groups the use cases the server translates requests into.
type Handlers struct {
	// Command handlers
	CreateOrder       CreateOrderHandler
	RequestTransition RequestTransitionHandler
	AssignChef        AssignChefHandler
	SetMaxServings    SetMaxServingsHandler

	// Query handlers
	GetOrderView      QueryHandler[queries.GetOrderViewQuery, *queries.GetOrderViewQueryResponse]
	GetActiveOrders   QueryHandler[queries.GetActiveOrdersQuery, []queries.GetActiveOrdersQueryResponse]
	CheckAvailability QueryHandler[queries.CheckAvailabilityQuery, *queries.CheckAvailabilityQueryResponse]
	ScaleRecipe       QueryHandler[queries.ScaleRecipeQuery, *queries.ScaleRecipeQueryResponse]
	GetMaxServings    QueryHandler[queries.GetMaxServingsQuery, *queries.GetMaxServingsQueryResponse]
	GetLowStock       QueryHandler[queries.GetLowStockIngredientsQuery, []queries.GetLowStockIngredientsQueryResponse]
}

// Server implements servers.ServerInterface by translating requests into
// commands and queries. It holds no business logic.
type Server struct {
	handlers  Handlers
	events    EventSource
	keepAlive time.Duration
	logger    *slog.Logger
}

type Option func(*Server)

// WithKeepAlive sets the comment interval that keeps idle event streams open.
func WithKeepAlive(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.keepAlive = d
		}
	}
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, events EventSource, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		handlers:  handlers,
		events:    events,
		keepAlive: defaultKeepAlive,
		logger:    logger.With("component", "http"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register mounts the generated API routes on e, behind request validation
// against the embedded OpenAPI document, and serves that document under
// /swagger/.
func (s *Server) Register(e *echo.Echo) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return fmt.Errorf("load api document: %w", err)
	}
	if err = registerDocs(swagger); err != nil {
		return err
	}

	validator, err := RequestValidator(swagger)
	if err != nil {
		return err
	}
	e.Use(validator)

	servers.RegisterHandlers(e, s)
	e.GET(DocsPath, echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(docsInstance)))
	return nil
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}
