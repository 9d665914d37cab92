package ports

import "context"

// SettingsRepository stores operator-tunable values keyed by name.
type SettingsRepository interface {
	// Get returns *errs.ObjectNotFoundError when key was never set.
	Get(ctx context.Context, key string) (string, error)

	// Set creates or replaces the value of key.
	Set(ctx context.Context, key, value string) error
}
