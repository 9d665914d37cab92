package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

type GetMaxServingsQueryHandler struct {
	settings ports.SettingsRepository
}

func NewGetMaxServingsQueryHandler(settings ports.SettingsRepository) GetMaxServingsQueryHandler {
	return GetMaxServingsQueryHandler{settings: settings}
}

func (h GetMaxServingsQueryHandler) Handle(
	ctx context.Context,
	query GetMaxServingsQuery,
) (*GetMaxServingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	value, isDefault, err := loadMaxServings(ctx, h.settings)
	if err != nil {
		return nil, err
	}
	return &GetMaxServingsQueryResponse{MaxServings: value.Int(), IsDefault: isDefault}, nil
}

// loadMaxServings falls back to the default when the setting was never stored.
func loadMaxServings(ctx context.Context, repo ports.SettingsRepository) (settings.MaxServings, bool, error) {
	raw, err := repo.Get(ctx, settings.MaxServingSizeKey)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return settings.DefaultMaxServingsValue(), true, nil
	}
	if err != nil {
		return 0, false, err
	}

	value, err := settings.ParseMaxServings(raw)
	if err != nil {
		return 0, false, err
	}
	return value, false, nil
}
