package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreLifecycle(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("ad_1.jpg", strings.NewReader("jpeg bytes")))
	assert.True(t, store.Exists("ad_1.jpg"))

	require.NoError(t, store.Delete("ad_1.jpg"))
	assert.False(t, store.Exists("ad_1.jpg"))
}

func TestLocalStoreDeleteMissingKey(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete("never_saved.png"))
}

func TestLocalStoreFlattensKeys(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("../../escape.txt", strings.NewReader("x")))
	assert.True(t, store.Exists("escape.txt"))
}

func TestLocalStoreRequiresDirectory(t *testing.T) {
	_, err := NewLocalStore("")
	assert.Error(t, err)
}
