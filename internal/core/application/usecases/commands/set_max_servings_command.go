package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/pkg/guard"
)

var ErrSetMaxServingsCommandIsNotConstructed = errors.New(
	"SetMaxServingsCommand must be created via NewSetMaxServingsCommand constructor",
)

// SetMaxServingsCommand changes the serving limit of the recipe scaler.
// OperatorToken is the credential the caller presented.
type SetMaxServingsCommand struct { //nolint:recvcheck //using for validation
	value         settings.MaxServings
	operatorToken string

	guard guard.ConstructorGuard
}

func NewSetMaxServingsCommand(value int, operatorToken string) (SetMaxServingsCommand, error) {
	maxServings, err := settings.NewMaxServings(value)
	if err != nil {
		return SetMaxServingsCommand{}, err
	}

	return SetMaxServingsCommand{
		value:         maxServings,
		operatorToken: operatorToken,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c SetMaxServingsCommand) Validate() error {
	return c.guard.Validate(ErrSetMaxServingsCommandIsNotConstructed)
}

func (c SetMaxServingsCommand) Value() settings.MaxServings {
	return c.value
}

func (c SetMaxServingsCommand) OperatorToken() string {
	return c.operatorToken
}
