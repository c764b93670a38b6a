package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigStore_SetPersistsImmediately(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyDataPath, "/data/posts.jsonl"))
	require.NoError(t, store.Set(KeyGraphAuthors, 20))

	// A fresh store reads what the first one wrote.
	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "/data/posts.jsonl", reloaded.GetString(KeyDataPath))
	assert.Equal(t, 20, reloaded.GetInt(KeyGraphAuthors))
}

func TestConfigStore_MissingKeysReturnZeroValues(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, store.GetString("no.such.key"))
	assert.Zero(t, store.GetInt("no.such.key"))
}

func TestConfigStore_DotKeysRoundTripAsNestedTables(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyAssistantModel, "gemini-2.0-flash"))
	require.NoError(t, store.Set(KeyAssistantKey, "secret"))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[assistant]")

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", reloaded.GetString(KeyAssistantModel))
	assert.Equal(t, "secret", reloaded.GetString(KeyAssistantKey))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyAssistantKey, "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_WrongTypeReturnsZeroValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("mixed", "not an int"))

	assert.Zero(t, store.GetInt("mixed"))
	assert.Equal(t, "not an int", store.GetString("mixed"))
}
