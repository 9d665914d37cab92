package ingredientrepo

import (
	"context"
	"errors"
	"sort"

	"fulfillment/internal/adapters/out/postgres/pgerrs"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormIngredientRepository implements IngredientRepository using GORM.
type GormIngredientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormIngredientRepository(db *gorm.DB, tracker aggregateTracker) *GormIngredientRepository {
	return &GormIngredientRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormIngredientRepository) Add(ctx context.Context, aggregate *inventory.Ingredient) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Classify("add ingredient", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormIngredientRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Ingredient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IngredientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ingredient", id.String())
		}
		return nil, pgerrs.Classify("get ingredient", err)
	}

	return toDomain(dto)
}

func (r *GormIngredientRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*inventory.Ingredient, error) {
	return r.getMany(ctx, r.db, ids, "get ingredients")
}

// GetManyForUpdate locks rows in ascending id order so that two reservations
// touching the same ingredients cannot deadlock.
func (r *GormIngredientRepository) GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*inventory.Ingredient, error) {
	locking := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Order("id")
	return r.getMany(ctx, locking, ids, "lock ingredients")
}

// SetQuantity writes an absolute quantity and tracks the updated ingredient.
func (r *GormIngredientRepository) SetQuantity(ctx context.Context, id kernel.UUID, quantity kernel.Quantity) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var dto IngredientDTO
	result := r.db.WithContext(ctx).
		Model(&dto).
		Clauses(clause.Returning{}).
		Where("id = ?", id.Bytes()).
		Update("quantity", quantity.Decimal())
	if result.Error != nil {
		return pgerrs.Classify("set ingredient quantity", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ingredient", id.String())
	}

	updated, err := toDomain(dto)
	if err != nil {
		return err
	}
	r.tracker.TrackAggregate(id, updated)
	return nil
}

// GetLowStock lists ingredients at or below their threshold, lowest first.
func (r *GormIngredientRepository) GetLowStock(ctx context.Context) ([]*inventory.Ingredient, error) {
	var dtos []IngredientDTO
	if err := r.db.WithContext(ctx).
		Where("quantity <= threshold").
		Order("quantity, name").
		Find(&dtos).Error; err != nil {
		return nil, pgerrs.Classify("get low stock", err)
	}
	return toDomainAll(dtos)
}

func (r *GormIngredientRepository) getMany(
	ctx context.Context,
	db *gorm.DB,
	ids []kernel.UUID,
	operation string,
) ([]*inventory.Ingredient, error) {
	if len(ids) == 0 {
		return []*inventory.Ingredient{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}
	sort.Slice(raw, func(i, j int) bool {
		return raw[i].String() < raw[j].String()
	})

	var dtos []IngredientDTO
	if err := db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, pgerrs.Classify(operation, err)
	}
	return toDomainAll(dtos)
}

func toDomainAll(dtos []IngredientDTO) ([]*inventory.Ingredient, error) {
	ingredients := make([]*inventory.Ingredient, 0, len(dtos))
	for _, dto := range dtos {
		i, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, i)
	}
	return ingredients, nil
}
