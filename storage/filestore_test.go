package storage

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoredName(t *testing.T) {
	name := StoredName("premium-script-1.vip.js")
	assert.True(t, strings.HasPrefix(name, "premium-script-1.vip-"))
	assert.True(t, strings.HasSuffix(name, ".js"))
	assert.NotEqual(t, name, StoredName("premium-script-1.vip.js"))

	assert.NotContains(t, StoredName("../../etc/evil.vip.js"), "/")
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), 16)
	require.NoError(t, err)

	name, size, err := store.Save("a.vip.js", strings.NewReader("console.log(1)"))
	require.NoError(t, err)
	assert.Equal(t, int64(14), size)

	f, err := store.Open(name)
	require.NoError(t, err)
	f.Close()

	require.NoError(t, store.Remove(name))
	_, err = os.Stat(store.Path(name))
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, store.Remove(name), "removing twice is fine")
}

func TestFileStoreRejectsOversizedUploads(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, 4)
	require.NoError(t, err)

	_, _, err = store.Save("big.vip.js", strings.NewReader("0123456789"))
	assert.ErrorIs(t, err, ErrTooLarge)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "partial file is removed")
}
