// Package errs provides the error taxonomy of the fulfillment engine.
// Every error type follows the same pattern so callers can classify failures
// with errors.Is and errors.As:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying the failing parameter or operation
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() for classification
//
// Validation (ValueIsInvalid, ValueIsRequired, ValueIsOutOfRange) and not-found
// errors are permanent and surface synchronously. InsufficientInventoryError is
// a business rejection. TransientBackendError and RateLimitError are absorbed by
// the operation queue and retried; IsTransient and IsPermanent expose that split.
package errs
