package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetMaxServingsQueryIsNotConstructed = errors.New(
		"GetMaxServingsQuery must be created via NewGetMaxServingsQuery constructor",
	)
)

// GetMaxServingsQuery reads the operator serving limit.
type GetMaxServingsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMaxServingsQuery() GetMaxServingsQuery {
	return GetMaxServingsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMaxServingsQuery) Validate() error {
	return q.guard.Validate(ErrGetMaxServingsQueryIsNotConstructed)
}

// GetMaxServingsQueryResponse reports the limit. IsDefault is set when no
// operator ever stored one.
type GetMaxServingsQueryResponse struct {
	MaxServings int  `json:"maxServings"`
	IsDefault   bool `json:"isDefault"`
}
