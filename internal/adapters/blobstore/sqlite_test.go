package blobstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLite_GetMissing(t *testing.T) {
	store, err := OpenMemory()
	require.NoError(t, err)
	defer store.Close()

	value, ok, err := store.Get("nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSQLite_SetGet(t *testing.T) {
	store, err := OpenMemory()
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("state", `{"pomodoroCount":3}`))

	value, ok, err := store.Get("state")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"pomodoroCount":3}`, value)
}

func TestSQLite_SetOverwrites(t *testing.T) {
	store, err := OpenMemory()
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("state", "old"))
	require.NoError(t, store.Set("state", "new"))

	value, ok, err := store.Get("state")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new", value)
}

func TestSQLite_Remove(t *testing.T) {
	store, err := OpenMemory()
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("state", "value"))
	require.NoError(t, store.Remove("state"))

	_, ok, err := store.Get("state")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is a no-op.
	require.NoError(t, store.Remove("state"))
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("state", "survives"))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get("state")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "survives", value)
}

func TestMemory(t *testing.T) {
	store := NewMemory()
	defer store.Close()

	_, ok, err := store.Get("state")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("state", "value"))
	value, ok, err := store.Get("state")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "value", value)

	require.NoError(t, store.Remove("state"))
	_, ok, err = store.Get("state")
	require.NoError(t, err)
	assert.False(t, ok)
}
