package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/songnote/internal/core/domain"
)

func TestNoteStore_Read(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.md")
	require.NoError(t, os.WriteFile(path, []byte("# Song\n"), 0o644))

	content, err := NewNoteStore().Read(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "# Song\n", content)
}

func TestNoteStore_Read_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.md")

	_, err := NewNoteStore().Read(context.Background(), path)

	assert.ErrorIs(t, err, domain.ErrNoteNotFound)
	assert.Contains(t, err.Error(), "missing.md")
}

func TestNoteStore_Read_Directory(t *testing.T) {
	_, err := NewNoteStore().Read(context.Background(), t.TempDir())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNoteStore_Write_ReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.md")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0o644))

	store := NewNoteStore()
	require.NoError(t, store.Write(context.Background(), path, "new"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestNoteStore_Write_KeepsPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on Windows")
	}

	path := filepath.Join(t.TempDir(), "song.md")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	require.NoError(t, NewNoteStore().Write(context.Background(), path, "y"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestNoteStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := NewNoteStore()

	_, err := store.Read(ctx, "song.md")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Write(ctx, "song.md", ""), context.Canceled)
}
