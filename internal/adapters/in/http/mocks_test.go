package http

import (
	"context"

	"fulfillment/internal/core/application/orderstore"
	"fulfillment/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct {
	mock.Mock
}

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockRequestTransitionHandler struct {
	mock.Mock
}

func (m *MockRequestTransitionHandler) Handle(
	ctx context.Context,
	cmd commands.RequestTransitionCommand,
) (commands.TransitionResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.TransitionResult), args.Error(1)
}

type MockAssignChefHandler struct {
	mock.Mock
}

func (m *MockAssignChefHandler) Handle(ctx context.Context, cmd commands.AssignChefCommand) (<-chan error, error) {
	args := m.Called(ctx, cmd)
	if done := args.Get(0); done != nil {
		return done.(chan error), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSetMaxServingsHandler struct {
	mock.Mock
}

func (m *MockSetMaxServingsHandler) Handle(ctx context.Context, cmd commands.SetMaxServingsCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockQueryHandler[Q, R any] struct {
	mock.Mock
}

func (m *MockQueryHandler[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	args := m.Called(ctx, query)
	var response R
	if v := args.Get(0); v != nil {
		response = v.(R)
	}
	return response, args.Error(1)
}

// stubEvents hands out one prepared channel.
type stubEvents struct {
	ch        chan orderstore.Event
	cancelled chan struct{}
}

func newStubEvents() *stubEvents {
	return &stubEvents{
		ch:        make(chan orderstore.Event, 4),
		cancelled: make(chan struct{}),
	}
}

func (s *stubEvents) Subscribe(int) (<-chan orderstore.Event, func()) {
	return s.ch, func() { close(s.cancelled) }
}
