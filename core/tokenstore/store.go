package tokenstore

import "context"

// Store is the durable client-local credential storage.
// Implementations must be safe for concurrent use.
type Store interface {
	// Load returns the persisted token, or ErrNotFound when none exists.
	Load(ctx context.Context) (string, error)
	// Save replaces the persisted token.
	Save(ctx context.Context, token string) error
	// Clear removes the persisted token. Clearing an empty store is not
	// an error; logout must always complete locally.
	Clear(ctx context.Context) error
}
