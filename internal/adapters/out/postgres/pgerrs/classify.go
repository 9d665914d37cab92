// Package pgerrs maps PostgreSQL and driver failures onto the engine's error
// taxonomy so the operation queue can tell retryable failures from final ones.
//
// Mapping:
//   - 53300 too_many_connections, 53400 configuration_limit_exceeded: rate limit
//   - class 08 connection exceptions, 57P01..57P03 shutdowns, 40001 and 40P01: transient
//   - driver timeouts, failed connects and context deadlines: transient
//
// Anything else is returned wrapped with the operation name.
package pgerrs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeTooManyConnections   = "53300"
	codeConfigLimitExceeded  = "53400"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	classConnection          = "08"
	prefixOperatorIntervened = "57P0"
)

// Classify returns err unchanged when it is nil or already classified.
func Classify(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errs.ErrTransientBackend) || errors.Is(err, errs.ErrRateLimited) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == codeTooManyConnections || pgErr.Code == codeConfigLimitExceeded:
			return errs.NewRateLimitError(operation, err)
		case strings.HasPrefix(pgErr.Code, classConnection),
			strings.HasPrefix(pgErr.Code, prefixOperatorIntervened),
			pgErr.Code == codeSerializationFailure,
			pgErr.Code == codeDeadlockDetected:
			return errs.NewTransientBackendError(operation, err)
		}
		return fmt.Errorf("%s: %w", operation, err)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) ||
		errors.Is(err, context.DeadlineExceeded) ||
		pgconn.Timeout(err) ||
		pgconn.SafeToRetry(err) {
		return errs.NewTransientBackendError(operation, err)
	}

	return fmt.Errorf("%s: %w", operation, err)
}
