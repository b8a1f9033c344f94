package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comforty/storefront/internal"
)

func TestLocalStore_RoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "cart", []byte(`{"version":1,"lines":[]}`)))

	data, err := store.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `{"version":1,"lines":[]}`, string(data))

	exists, err := store.Exists(ctx, "cart")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalStore_Overwrite(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "cart", []byte(`first`)))
	require.NoError(t, store.Put(ctx, "cart", []byte(`second`)))

	data, err := store.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestLocalStore_GetMissingKey(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "missing")
	assert.True(t, IsNotFound(err))
}

func TestLocalStore_DeleteIsIdempotent(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "cart", []byte(`x`)))
	require.NoError(t, store.Delete(ctx, "cart"))
	require.NoError(t, store.Delete(ctx, "cart"), "deleting a missing key is not an error")

	exists, err := store.Exists(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStore_CreatesBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "data")
	store, err := NewLocalStore(base)
	require.NoError(t, err)

	require.NoError(t, store.Put(context.Background(), "cart", []byte(`x`)))
}

func TestNewStore_Providers(t *testing.T) {
	store, err := NewStore(internal.CartStorageConfig{Provider: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = NewStore(internal.CartStorageConfig{Provider: "local", Path: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, store)

	_, err = NewStore(internal.CartStorageConfig{Provider: "cloud"})
	assert.Error(t, err)
}
