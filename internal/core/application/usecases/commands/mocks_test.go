package commands_test

import (
	"context"

	"fulfillment/internal/core/application/catalog"
	"fulfillment/internal/core/application/opqueue"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/recipe"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockRecipeRepository struct{ mock.Mock }

func (m *MockRecipeRepository) Add(ctx context.Context, r *recipe.Recipe) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRecipeRepository) Get(ctx context.Context, id kernel.UUID) (*recipe.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) GetByMenuItem(ctx context.Context, id kernel.UUID) (*recipe.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) GetByMenuItems(ctx context.Context, ids []kernel.UUID) ([]*recipe.Recipe, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipe.Recipe), args.Error(1)
}

type MockIngredientRepository struct{ mock.Mock }

func (m *MockIngredientRepository) Add(ctx context.Context, i *inventory.Ingredient) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockIngredientRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*inventory.Ingredient, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*inventory.Ingredient, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) SetQuantity(ctx context.Context, id kernel.UUID, q kernel.Quantity) error {
	return m.Called(ctx, id, q).Error(0)
}

func (m *MockIngredientRepository) GetLowStock(ctx context.Context) ([]*inventory.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Ingredient), args.Error(1)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsRepository) Set(ctx context.Context, key, value string) error {
	return m.Called(ctx, key, value).Error(0)
}

type MockTxManager struct{ mock.Mock }

func (m *MockTxManager) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTxManager) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ MockTxManager }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockFulfillmentUoW struct{ MockTxManager }

func (m *MockFulfillmentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockFulfillmentUoW) RecipeRepository() ports.RecipeRepository {
	args := m.Called()
	return args.Get(0).(ports.RecipeRepository)
}

func (m *MockFulfillmentUoW) IngredientRepository() ports.IngredientRepository {
	args := m.Called()
	return args.Get(0).(ports.IngredientRepository)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}

type MockIngredientUoW struct{ MockTxManager }

func (m *MockIngredientUoW) IngredientRepository() ports.IngredientRepository {
	args := m.Called()
	return args.Get(0).(ports.IngredientRepository)
}

type MockIngredientUoWFactory struct{ mock.Mock }

func (m *MockIngredientUoWFactory) Create() commands.IngredientUoW {
	args := m.Called()
	return args.Get(0).(commands.IngredientUoW)
}

type MockStockCache struct{ mock.Mock }

func (m *MockStockCache) Put(ctx context.Context, ingredients ...*inventory.Ingredient) error {
	return m.Called(ctx, ingredients).Error(0)
}

func (m *MockStockCache) GetMany(ctx context.Context, ids []kernel.UUID) ([]*inventory.Ingredient, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Ingredient), args.Error(1)
}

type MockSettingsUoW struct{ MockTxManager }

func (m *MockSettingsUoW) SettingsRepository() ports.SettingsRepository {
	args := m.Called()
	return args.Get(0).(ports.SettingsRepository)
}

type MockSettingsUoWFactory struct{ mock.Mock }

func (m *MockSettingsUoWFactory) Create() commands.SettingsUoW {
	args := m.Called()
	return args.Get(0).(commands.SettingsUoW)
}

type MockCatalogLoader struct{ mock.Mock }

func (m *MockCatalogLoader) ForOrder(ctx context.Context, o *order.Order) (catalog.Snapshot, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(catalog.Snapshot), args.Error(1)
}

type MockOrderSeeder struct{ mock.Mock }

func (m *MockOrderSeeder) Seed(o *order.Order) bool {
	return m.Called(o).Bool(0)
}

// syncQueue runs tasks inline, one attempt each, so handler tests can
// observe commit outcomes without a worker goroutine.
type syncQueue struct {
	tasks []opqueue.Task
	err   error
}

func (q *syncQueue) Enqueue(task opqueue.Task) error {
	if q.err != nil {
		return q.err
	}
	q.tasks = append(q.tasks, task)
	return nil
}

// runAll executes queued tasks in order and reports each outcome through OnDone.
func (q *syncQueue) runAll(ctx context.Context) {
	tasks := q.tasks
	q.tasks = nil
	for _, task := range tasks {
		err := task.Run(ctx)
		if task.OnDone != nil {
			task.OnDone(err)
		}
	}
}
