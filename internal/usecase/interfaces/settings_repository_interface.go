package interfaces

import "context"

// ISettingsRepository abstracts the application settings key/value store used
// to persist the generated webhook secret.
//
// Get returns an empty string (no error) for an absent key. PutIfAbsent must
// be conditional so that two concurrent first-time generations agree on a
// single stored value (first writer wins; losing is not an error).

type ISettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	PutIfAbsent(ctx context.Context, key, value string) error
}
