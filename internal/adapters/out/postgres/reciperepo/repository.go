package reciperepo

import (
	"context"
	"errors"

	"fulfillment/internal/adapters/out/postgres/pgerrs"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/recipe"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRecipeRepository implements RecipeRepository using GORM.
type GormRecipeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRecipeRepository(db *gorm.DB, tracker aggregateTracker) *GormRecipeRepository {
	return &GormRecipeRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormRecipeRepository) Add(ctx context.Context, aggregate *recipe.Recipe) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Classify("add recipe", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRecipeRepository) Get(ctx context.Context, id kernel.UUID) (*recipe.Recipe, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecipeDTO
	if err := r.withRequirements(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recipe", id.String())
		}
		return nil, pgerrs.Classify("get recipe", err)
	}

	return toDomain(dto)
}

func (r *GormRecipeRepository) GetByMenuItem(ctx context.Context, menuItemID kernel.UUID) (*recipe.Recipe, error) {
	if err := menuItemID.Validate(); err != nil {
		return nil, err
	}

	var dto RecipeDTO
	if err := r.withRequirements(ctx).First(&dto, "menu_item_id = ?", menuItemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("recipe", menuItemID.String(),
				errors.New("no recipe for menu item"))
		}
		return nil, pgerrs.Classify("get recipe by menu item", err)
	}

	return toDomain(dto)
}

// GetByMenuItems loads the recipes of several menu items in one query.
func (r *GormRecipeRepository) GetByMenuItems(ctx context.Context, menuItemIDs []kernel.UUID) ([]*recipe.Recipe, error) {
	if len(menuItemIDs) == 0 {
		return []*recipe.Recipe{}, nil
	}

	raw := make([]uuid.UUID, 0, len(menuItemIDs))
	for _, id := range menuItemIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []RecipeDTO
	if err := r.withRequirements(ctx).Where("menu_item_id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, pgerrs.Classify("get recipes by menu items", err)
	}

	recipes := make([]*recipe.Recipe, 0, len(dtos))
	for _, dto := range dtos {
		rec, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, nil
}

func (r *GormRecipeRepository) withRequirements(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Requirements", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position")
	})
}
