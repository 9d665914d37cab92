package settingsrepo

import (
	"context"
	"errors"
	"strings"

	"fulfillment/internal/adapters/out/postgres/pgerrs"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

func (r *GormSettingsRepository) Get(ctx context.Context, key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", errs.NewValueIsRequiredError("key")
	}

	var dto SettingDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("setting", key)
		}
		return "", pgerrs.Classify("get setting", err)
	}
	return dto.Value, nil
}

// Set upserts the row for key.
func (r *GormSettingsRepository) Set(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return errs.NewValueIsRequiredError("key")
	}

	dto := SettingDTO{Key: key, Value: value}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&dto).Error
	if err != nil {
		return pgerrs.Classify("set setting", err)
	}
	return nil
}
