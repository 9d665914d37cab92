package queries_test

import (
	"context"
	"testing"

	"fulfillment/internal/adapters/out/postgres/ingredientrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetLowStockIngredientsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetLowStockIngredientsQueryHandler
	repo      *ingredientrepo.GormIngredientRepository
}

func TestGetLowStockIngredientsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetLowStockIngredientsQueryHandlerTestSuite))
}

func (suite *GetLowStockIngredientsQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startPostgres(suite.T(), &ingredientrepo.IngredientDTO{})
	suite.handler = queries.NewGetLowStockIngredientsQueryHandler(suite.db)
	suite.repo = ingredientrepo.NewGormIngredientRepository(suite.db, &mockAggregateTracker{})
}

func (suite *GetLowStockIngredientsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetLowStockIngredientsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE ingredients").Error)
}

func (suite *GetLowStockIngredientsQueryHandlerTestSuite) add(name, quantity string) *inventory.Ingredient {
	i, err := inventory.NewIngredient(kernel.NewUUID(), name, "kg", kernel.MustQuantity(quantity), nil, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), i))
	return i
}

func (suite *GetLowStockIngredientsQueryHandlerTestSuite) TestHandle_DefaultThresholdBoundary() {
	suite.add("flour", "11")
	salt := suite.add("salt", "10")
	yeast := suite.add("yeast", "0.5")

	result, err := suite.handler.Handle(context.Background(), queries.NewGetLowStockIngredientsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(yeast.ID(), result[0].ID)
	suite.Equal("yeast", result[0].Name)
	suite.Equal("kg", result[0].Unit)
	suite.True(result[0].Threshold.Equal(inventory.DefaultThreshold.Decimal()))
	suite.Equal(yeast.LocationID(), result[0].LocationID)
	suite.Equal(salt.ID(), result[1].ID)
}

func (suite *GetLowStockIngredientsQueryHandlerTestSuite) TestHandle_NothingLow_ReturnsEmptySlice() {
	suite.add("flour", "500")

	result, err := suite.handler.Handle(context.Background(), queries.NewGetLowStockIngredientsQuery())
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetLowStockIngredientsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetLowStockIngredientsQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetLowStockIngredientsQueryIsNotConstructed)
}
