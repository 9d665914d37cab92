package pgerrs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"fulfillment/internal/adapters/out/postgres/pgerrs"
	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transient bool
		rateLimit bool
	}{
		{"too many connections", &pgconn.PgError{Code: "53300"}, true, true},
		{"configuration limit", &pgconn.PgError{Code: "53400"}, true, true},
		{"connection failure", &pgconn.PgError{Code: "08006"}, true, false},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, true, false},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true, false},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, true, false},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), true, false},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false, false},
		{"plain error", errors.New("boom"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pgerrs.Classify("set quantity", tt.err)

			require.Error(t, err)
			assert.Equal(t, tt.transient, errs.IsTransient(err))
			assert.Equal(t, tt.rateLimit, errors.Is(err, errs.ErrRateLimited))
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "set quantity")
		})
	}
}

func TestClassify_NilAndClassified(t *testing.T) {
	require.NoError(t, pgerrs.Classify("noop", nil))

	classified := errs.NewRateLimitError("get ingredients", nil)
	assert.Same(t, classified, pgerrs.Classify("other", classified))
}
