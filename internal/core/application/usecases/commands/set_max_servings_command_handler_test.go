package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const operatorToken = "s3cret"

func newSettingsHandler(factory *MockSettingsUoWFactory, token string) commands.SetMaxServingsCommandHandler {
	return commands.NewSetMaxServingsCommandHandler(factory, token, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewSetMaxServingsCommand(t *testing.T) {
	cmd, err := commands.NewSetMaxServingsCommand(120, operatorToken)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, 120, cmd.Value().Int())
	assert.Equal(t, operatorToken, cmd.OperatorToken())

	_, err = commands.NewSetMaxServingsCommand(0, operatorToken)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	var zero commands.SetMaxServingsCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrSetMaxServingsCommandIsNotConstructed)
}

func TestSetMaxServingsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSetMaxServingsCommand(120, operatorToken)

	repo := new(MockSettingsRepository)
	uow := new(MockSettingsUoW)
	factory := new(MockSettingsUoWFactory)
	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SettingsRepository").Return(repo).Once(),
		repo.On("Set", ctx, settings.MaxServingSizeKey, "120").Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := newSettingsHandler(factory, operatorToken).Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSetMaxServingsCommandHandler_Handle_AccessDenied(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		presented  string
	}{
		{"wrong token", operatorToken, "guess"},
		{"missing token", operatorToken, ""},
		{"no token configured", "", operatorToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := commands.NewSetMaxServingsCommand(120, tt.presented)
			factory := new(MockSettingsUoWFactory)

			err := newSettingsHandler(factory, tt.configured).Handle(t.Context(), cmd)

			require.ErrorIs(t, err, errs.ErrAccessDenied)
			factory.AssertNotCalled(t, "Create")
		})
	}
}

func TestSetMaxServingsCommandHandler_Handle_SetError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSetMaxServingsCommand(50, operatorToken)

	repo := new(MockSettingsRepository)
	uow := new(MockSettingsUoW)
	factory := new(MockSettingsUoWFactory)
	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SettingsRepository").Return(repo).Once(),
		repo.On("Set", ctx, settings.MaxServingSizeKey, "50").Return(errors.New("write failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := newSettingsHandler(factory, operatorToken).Handle(ctx, cmd)

	require.EqualError(t, err, "write failed")
	uow.AssertExpectations(t)
}
