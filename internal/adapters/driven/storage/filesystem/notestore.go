// Package filesystem provides a driven.NoteStore backed by local files.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/custodia-labs/songnote/internal/core/domain"
	"github.com/custodia-labs/songnote/internal/core/ports/driven"
)

// Ensure NoteStore implements the interface.
var _ driven.NoteStore = (*NoteStore)(nil)

const defaultNoteMode fs.FileMode = 0o644

// NoteStore reads and writes song notes on the local filesystem.
type NoteStore struct{}

// NewNoteStore creates a new filesystem note store.
func NewNoteStore() *NoteStore {
	return &NoteStore{}
}

// Read returns the note content.
func (s *NoteStore) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", path, domain.ErrNoteNotFound)
		}
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory: %w", path, domain.ErrInvalidInput)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write replaces the note content in place, keeping its permissions.
func (s *NoteStore) Write(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mode := defaultNoteMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	return os.WriteFile(path, []byte(content), mode)
}
