// Package postgres provides the GORM-based Unit of Work over the fulfillment
// tables. A unit of work hands out repositories bound to its transaction and
// keeps every aggregate they write until the transaction ends.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, WithCommitObserver(warmCache))
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.IngredientRepository().SetQuantity(ctx, id, q); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Row locks taken with GetForUpdate are held until Commit or Rollback
package postgres

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/ingredientrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/pgerrs"
	"fulfillment/internal/adapters/out/postgres/reciperepo"
	"fulfillment/internal/adapters/out/postgres/settingsrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// CommitObserver receives the aggregates written by a transaction after it
// committed. It runs on the committing goroutine.
type CommitObserver func(ctx context.Context, aggregates []any)

type FactoryOption func(*GormUnitOfWorkFactory)

// WithCommitObserver registers fn to be called after every successful commit
// that wrote at least one aggregate.
func WithCommitObserver(fn CommitObserver) FactoryOption {
	return func(f *GormUnitOfWorkFactory) {
		f.observers = append(f.observers, fn)
	}
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM pool.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	observers []CommitObserver
}

func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...FactoryOption) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{db: db}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create produces a fresh unit of work with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		observers:         f.observers,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the order,
// recipe, ingredient and settings repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	observers         []CommitObserver
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling Begin again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return pgerrs.Classify("begin transaction", tx.Error)
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit makes the transaction's writes permanent and then hands the tracked
// aggregates to the commit observers.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return pgerrs.Classify("commit transaction", err)
	}

	uow.notify(ctx)
	return nil
}

// Rollback discards the transaction. Calling it after Commit returns
// gorm.ErrInvalidTransaction, so a deferred Rollback is harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RecipeRepository() ports.RecipeRepository {
	return reciperepo.NewGormRecipeRepository(uow.conn(), uow)
}

// IngredientRepository tracks every ingredient whose quantity it writes, so
// commit observers see the post-commit stock.
func (uow *GormUnitOfWork) IngredientRepository() ports.IngredientRepository {
	return ingredientrepo.NewGormIngredientRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SettingsRepository() ports.SettingsRepository {
	return settingsrepo.NewGormSettingsRepository(uow.conn())
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the aggregates written since Begin.
func (uow *GormUnitOfWork) TrackedAggregates() []any {
	aggregates := make([]any, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		aggregates = append(aggregates, t.Aggregate)
	}
	return aggregates
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) notify(ctx context.Context) {
	aggregates := uow.TrackedAggregates()
	uow.trackedAggregates = uow.trackedAggregates[:0]
	if len(aggregates) == 0 {
		return
	}
	for _, observe := range uow.observers {
		observe(ctx, aggregates)
	}
}
