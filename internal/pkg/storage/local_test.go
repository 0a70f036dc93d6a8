package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndRead(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	path, err := store.Save(ctx, "slips/EMP001/2025-06.txt", []byte("salary slip"))
	require.NoError(t, err)
	assert.Equal(t, "slips/EMP001/2025-06.txt", path)

	content, err := store.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "salary slip", string(content))

	exists, err := store.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalStorageExistsMissing(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	exists, err := store.Exists(context.Background(), "slips/none.txt")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = store.Read(context.Background(), "slips/none.txt")
	assert.Error(t, err)
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "../outside.txt", []byte("nope"))
	assert.Error(t, err)
}
