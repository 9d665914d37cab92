package cmd

import (
	"context"
	"log/slog"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/redis/stockcache"
	"fulfillment/internal/core/application/catalog"
	"fulfillment/internal/core/application/opqueue"
	"fulfillment/internal/core/application/orderstore"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	// reads runs repository calls outside any transaction.
	reads  ports.UnitOfWork
	store  *orderstore.Store
	queue  *opqueue.Queue
	cache  ports.StockCache
	loader *catalog.Loader
	logger *slog.Logger
}

// NewCompositionRoot wires the engine. redisClient may be nil, which
// disables the stock cache.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, redisClient redis.Cmdable, logger *slog.Logger) *CompositionRoot {
	c := &CompositionRoot{
		cfg:    cfg,
		gormDB: gormDB,
		store:  orderstore.New(logger),
		queue:  opqueue.New(cfg.QueueConfig(), logger),
		logger: logger,
	}

	var opts []postgres.FactoryOption
	if redisClient != nil {
		cache := stockcache.New(redisClient, cfg.StockCacheTTL)
		c.cache = cache
		opts = append(opts, postgres.WithCommitObserver(func(ctx context.Context, aggregates []any) {
			if err := cache.Observe(ctx, aggregates); err != nil {
				logger.WarnContext(ctx, "Failed to refresh stock cache", "error", err)
			}
		}))
	}

	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, opts...)
	c.reads = c.uowFactory.Create()
	c.loader = catalog.NewLoader(c.reads.RecipeRepository(), c.reads.IngredientRepository(), c.cache, logger)
	return c
}

func (c *CompositionRoot) Store() *orderstore.Store {
	return c.store
}

func (c *CompositionRoot) Queue() *opqueue.Queue {
	return c.queue
}

func (c *CompositionRoot) fetchOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return c.uowFactory.Create().OrderRepository().Get(ctx, id)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.store)
	return &h
}

func (c *CompositionRoot) CreateRequestTransitionCommandHandler() *commands.RequestTransitionCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestTransitionCommandHandler(c.store, c.queue, c.loader, f, c.cfg.CommitTimeout, c.logger)
}

func (c *CompositionRoot) CreateAssignChefCommandHandler() *commands.AssignChefCommandHandler {
	return commands.NewAssignChefCommandHandler(c.store, c.queue, c.orderUoWFactory(), c.cfg.CommitTimeout, c.logger)
}

func (c *CompositionRoot) CreateSetMaxServingsCommandHandler() commands.SetMaxServingsCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetMaxServingsCommandHandler(f, c.cfg.OperatorToken, c.logger)
}

func (c *CompositionRoot) CreateResyncOrdersCommandHandler() *commands.ResyncOrdersCommandHandler {
	return commands.NewResyncOrdersCommandHandler(c.store, c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateRefreshLowStockCommandHandler() *commands.RefreshLowStockCommandHandler {
	var f commands.IngredientUoWFactory = FuncIngredientUoWFactory(func() commands.IngredientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshLowStockCommandHandler(f, c.cache, c.logger)
}

func (c *CompositionRoot) CreateGetOrderViewQueryHandler() queries.GetOrderViewQueryHandler {
	return queries.NewGetOrderViewQueryHandler(c.store, c.fetchOrder)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCheckAvailabilityQueryHandler() queries.CheckAvailabilityQueryHandler {
	return queries.NewCheckAvailabilityQueryHandler(c.store, c.fetchOrder, c.loader)
}

func (c *CompositionRoot) CreateScaleRecipeQueryHandler() queries.ScaleRecipeQueryHandler {
	return queries.NewScaleRecipeQueryHandler(c.loader, c.reads.SettingsRepository())
}

func (c *CompositionRoot) CreateGetMaxServingsQueryHandler() queries.GetMaxServingsQueryHandler {
	return queries.NewGetMaxServingsQueryHandler(c.reads.SettingsRepository())
}

func (c *CompositionRoot) CreateGetLowStockIngredientsQueryHandler() queries.GetLowStockIngredientsQueryHandler {
	return queries.NewGetLowStockIngredientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateResyncOrdersCommandHandler(),
		c.CreateRefreshLowStockCommandHandler(),
		jobs.Schedules{Resync: c.cfg.ResyncSchedule, LowStock: c.cfg.LowStockSchedule},
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		RequestTransition: c.CreateRequestTransitionCommandHandler(),
		AssignChef:        c.CreateAssignChefCommandHandler(),
		SetMaxServings:    c.CreateSetMaxServingsCommandHandler(),
		GetOrderView:      c.CreateGetOrderViewQueryHandler(),
		GetActiveOrders:   c.CreateGetActiveOrdersQueryHandler(),
		CheckAvailability: c.CreateCheckAvailabilityQueryHandler(),
		ScaleRecipe:       c.CreateScaleRecipeQueryHandler(),
		GetMaxServings:    c.CreateGetMaxServingsQueryHandler(),
		GetLowStock:       c.CreateGetLowStockIngredientsQueryHandler(),
	}, c.store, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncIngredientUoWFactory func() commands.IngredientUoW

func (f FuncIngredientUoWFactory) Create() commands.IngredientUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}
