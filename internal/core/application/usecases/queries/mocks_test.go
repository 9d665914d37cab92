package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/recipe"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockCatalogLoader struct {
	mock.Mock
}

func (m *MockCatalogLoader) ForOrder(ctx context.Context, o *order.Order) (catalog.Snapshot, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(catalog.Snapshot), args.Error(1)
}

func (m *MockCatalogLoader) ForRecipe(ctx context.Context, id kernel.UUID) (*recipe.Recipe, catalog.Snapshot, error) {
	args := m.Called(ctx, id)
	var r *recipe.Recipe
	if args.Get(0) != nil {
		r = args.Get(0).(*recipe.Recipe)
	}
	return r, args.Get(1).(catalog.Snapshot), args.Error(2)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsRepository) Set(ctx context.Context, key, value string) error {
	return m.Called(ctx, key, value).Error(0)
}

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// startPostgres runs a disposable PostgreSQL and migrates models into it.
func startPostgres(t *testing.T, models ...any) (*postgres.PostgresContainer, *gorm.DB) {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models...))

	return container, db
}
