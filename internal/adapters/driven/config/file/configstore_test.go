package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DefaultDirName, "config.toml"), store.Path())
}

func TestNewConfigStore_DoesNotCreateFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	_, err := NewConfigStore(dir)
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("normaliser.preset", "basic"))

	val, ok := store.Get("normaliser.preset")
	assert.True(t, ok)
	assert.Equal(t, "basic", val)
	assert.Equal(t, "basic", store.GetString("normaliser.preset"))
}

func TestConfigStore_GetString_WrongType(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("count", 42))
	assert.Equal(t, "", store.GetString("count"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("normaliser.preset", "extended"))
	require.NoError(t, store.Set("document.layout", "legacy"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[normaliser]")
	assert.Contains(t, string(data), "[document]")
	assert.Contains(t, string(data), "preset =")
	assert.Contains(t, string(data), "extended")
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("document.source_marker", "## Master"))
	require.NoError(t, store1.Set("document.layout", "legacy"))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "## Master", store2.GetString("document.source_marker"))
	assert.Equal(t, "legacy", store2.GetString("document.layout"))
}

func TestConfigStore_Delete(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("document.delimiter", "***"))
	require.NoError(t, store.Delete("document.delimiter"))
	require.NoError(t, store.Delete("document.delimiter"))

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	_, ok := reloaded.Get("document.delimiter")
	assert.False(t, ok)
}

func TestConfigStore_LoadHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[normaliser]
preset = "basic"

[document]
layout = "legacy"
target_marker = "## Lyrics (Spotify)"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0o600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "basic", store.GetString("normaliser.preset"))
	assert.Equal(t, "legacy", store.GetString("document.layout"))
	assert.Equal(t, "## Lyrics (Spotify)", store.GetString("document.target_marker"))
}

func TestConfigStore_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not = [valid"), 0o600))

	_, err := NewConfigStore(tmpDir)
	assert.Error(t, err)
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[string]any{"d": "x"},
		},
		"top": true,
	}

	flat := flattenMap(nested, "")

	assert.Equal(t, map[string]any{"a.b": 1, "a.c.d": "x", "top": true}, flat)
}

func TestNestMap(t *testing.T) {
	flat := map[string]any{"a.b": 1, "a.c.d": "x", "top": true}

	nested := nestMap(flat)

	assert.Equal(t, map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[string]any{"d": "x"},
		},
		"top": true,
	}, nested)
	assert.Equal(t, flat, flattenMap(nested, ""))
}
