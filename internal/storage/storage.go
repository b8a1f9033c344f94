package storage

import (
	"context"

	"github.com/comforty/storefront/internal"
)

// Store is a keyed snapshot store: the on-device "local storage" the cart is
// mirrored into. Implementations can use the local filesystem or memory;
// there is no cross-process coordination, so concurrent writers race at
// last-write-wins granularity.
type Store interface {
	// Put writes the value under the key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Get returns the value stored under the key.
	// Returns ErrKeyNotFound when the key has never been written or was
	// deleted.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Exists reports whether the key holds a value.
	Exists(ctx context.Context, key string) (bool, error)
}

// NewStore creates a Store implementation based on configuration.
// Returns LocalStore for "local", MemoryStore for "memory".
func NewStore(cfg internal.CartStorageConfig) (Store, error) {
	switch cfg.Provider {
	case "local", "":
		return NewLocalStore(cfg.Path)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, ErrUnknownProvider(cfg.Provider)
	}
}
