package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"fulfillment/internal/core/application/orderstore"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, menuItemID kernel.UUID, quantity int) *order.Order {
	t.Helper()
	item, err := order.NewItem(menuItemID, quantity, decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), []order.Item{item})
	require.NoError(t, err)
	return o
}

func newStore() *orderstore.Store {
	return orderstore.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func fetchOnly(o *order.Order) orderstore.FetchFunc {
	return func(_ context.Context, id kernel.UUID) (*order.Order, error) {
		if o == nil || id != o.ID() {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return o.Clone(), nil
	}
}

func TestGetOrderViewQueryHandler_FetchesUntrackedOrder(t *testing.T) {
	o := newTestOrder(t, kernel.NewUUID(), 3)
	handler := queries.NewGetOrderViewQueryHandler(newStore(), fetchOnly(o))

	query, err := queries.NewGetOrderViewQuery(o.ID())
	require.NoError(t, err)

	view, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, o.ID(), view.ID)
	assert.Equal(t, order.Pending, view.Status)
	assert.Equal(t, order.Pending, view.ConfirmedStatus)
	assert.Zero(t, view.Pending)
	assert.False(t, view.Stale)
	assert.Nil(t, view.ChefID)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("30.00")))
}

func TestGetOrderViewQueryHandler_ShowsOptimisticStatus(t *testing.T) {
	o := newTestOrder(t, kernel.NewUUID(), 1)
	store := newStore()
	store.Seed(o)
	_, err := store.Update(o.ID(), func(next *order.Order) error {
		_, err := next.Transition(order.Accept)
		return err
	})
	require.NoError(t, err)

	handler := queries.NewGetOrderViewQueryHandler(store, fetchOnly(nil))
	query, err := queries.NewGetOrderViewQuery(o.ID())
	require.NoError(t, err)

	view, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, order.Accepted, view.Status)
	assert.Equal(t, order.Pending, view.ConfirmedStatus)
	assert.Equal(t, 1, view.Pending)
}

func TestGetOrderViewQueryHandler_Errors(t *testing.T) {
	handler := queries.NewGetOrderViewQueryHandler(newStore(), fetchOnly(nil))

	_, err := handler.Handle(context.Background(), queries.GetOrderViewQuery{})
	require.ErrorIs(t, err, queries.ErrGetOrderViewQueryIsNotConstructed)

	query, err := queries.NewGetOrderViewQuery(kernel.NewUUID())
	require.NoError(t, err)
	_, err = handler.Handle(context.Background(), query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	boom := errors.New("connection reset")
	failing := queries.NewGetOrderViewQueryHandler(newStore(), func(context.Context, kernel.UUID) (*order.Order, error) {
		return nil, boom
	})
	_, err = failing.Handle(context.Background(), query)
	require.ErrorIs(t, err, boom)
}
