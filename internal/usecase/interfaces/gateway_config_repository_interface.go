package interfaces

import (
	"context"
)

// IGatewayConfigRepository abstracts the admin-owned gateway configuration
// store: one key/value row set per gateway driver.
//
// Exactly one row set exists for the Mercado Pago driver; resolving it on
// every request (instead of caching it globally) keeps admin edits effective
// immediately.

type IGatewayConfigRepository interface {
	GetValues(ctx context.Context, driver string) (map[string]string, error)
	PutValues(ctx context.Context, driver string, values map[string]string) error
}
