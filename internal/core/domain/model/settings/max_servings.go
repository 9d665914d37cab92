// Package settings holds operator-tunable values and their validation.
package settings

import (
	"fmt"
	"strconv"

	"fulfillment/internal/pkg/errs"
)

// MaxServingSizeKey is the settings key of the serving limit.
const MaxServingSizeKey = "max_serving_size"

const (
	DefaultMaxServings = 200
	// UpperMaxServings bounds what an operator may configure.
	UpperMaxServings = 10000
)

// MaxServings is the largest serving count a recipe may be scaled to.
type MaxServings int

func NewMaxServings(n int) (MaxServings, error) {
	if n < 1 || n > UpperMaxServings {
		return 0, errs.NewValueIsOutOfRangeError("maxServings", n, 1, UpperMaxServings)
	}
	return MaxServings(n), nil
}

func DefaultMaxServingsValue() MaxServings {
	return MaxServings(DefaultMaxServings)
}

// ParseMaxServings reads a stored setting value.
func ParseMaxServings(raw string) (MaxServings, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("maxServings", fmt.Errorf("%q is not a number", raw))
	}
	return NewMaxServings(n)
}

func (m MaxServings) Int() int {
	return int(m)
}

func (m MaxServings) String() string {
	return strconv.Itoa(int(m))
}
