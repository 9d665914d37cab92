package commands

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/pkg/errs"
)

// SetMaxServingsCommandHandler persists the serving limit. Only callers
// presenting the configured operator token may change it; with no token
// configured every request is denied.
type SetMaxServingsCommandHandler struct {
	uowFactory    SettingsUoWFactory
	operatorToken string
	logger        *slog.Logger
}

func NewSetMaxServingsCommandHandler(
	uowFactory SettingsUoWFactory,
	operatorToken string,
	logger *slog.Logger,
) SetMaxServingsCommandHandler {
	return SetMaxServingsCommandHandler{
		uowFactory:    uowFactory,
		operatorToken: operatorToken,
		logger:        logger.With("component", "settings"),
	}
}

func (h SetMaxServingsCommandHandler) Handle(ctx context.Context, cmd SetMaxServingsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.authorized(cmd.OperatorToken()) {
		h.logger.WarnContext(ctx, "Rejected settings change without operator privileges",
			"key", settings.MaxServingSizeKey)
		return errs.NewAccessDeniedError("set " + settings.MaxServingSizeKey)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SettingsRepository().Set(ctx, settings.MaxServingSizeKey, cmd.Value().String()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Max serving size changed", "value", cmd.Value().Int())
	return nil
}

func (h SetMaxServingsCommandHandler) authorized(token string) bool {
	if h.operatorToken == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(h.operatorToken), []byte(token)) == 1
}
