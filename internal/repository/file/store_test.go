package file

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"task-viewer/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ repository.Store = (*Store)(nil)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "store.json"))
}

func TestGet_MissingFile(t *testing.T) {
	store := newTestStore(t)

	value, ok, err := store.Get(context.Background(), repository.KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSetAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, repository.KeyTaskOverrides, `{"5":true}`))
	require.NoError(t, store.Set(ctx, repository.KeyTheme, "dark"))

	value, ok, err := store.Get(ctx, repository.KeyTaskOverrides)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"5":true}`, value)

	value, ok, err = store.Get(ctx, repository.KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestSet_IsVisibleToNewHandle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	require.NoError(t, New(path).Set(ctx, repository.KeyTheme, "dark"))

	value, ok, err := New(path).Get(ctx, repository.KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestGet_MalformedDocumentIsEmpty(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	_, ok, err := store.Get(context.Background(), repository.KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(context.Background(), repository.KeyTheme, "light"))
	value, ok, err := store.Get(context.Background(), repository.KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)
}

func TestSet_CancelledContext(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, store.Set(ctx, repository.KeyTheme, "dark"))
	_, err := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestSet_ConcurrentWritersKeepAllKeys(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	keys := []string{"a", "b", "c", "d", "e", "f"}

	var wg sync.WaitGroup
	for _, key := range keys {
		wg.Add(1)
		go func(k string) {
			defer wg.Done()
			assert.NoError(t, store.Set(ctx, k, k+"-value"))
		}(key)
	}
	wg.Wait()

	for _, key := range keys {
		value, ok, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, key+"-value", value)
	}
}
