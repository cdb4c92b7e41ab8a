package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/songnote/internal/core/domain"
	"github.com/custodia-labs/songnote/internal/core/ports/driven"
)

// Ensure NoteStore implements the interface.
var _ driven.NoteStore = (*NoteStore)(nil)

// NoteStore is an in-memory implementation of driven.NoteStore.
type NoteStore struct {
	mu     sync.RWMutex
	notes  map[string]string
	writes int

	// WriteErr, when set, is returned by every Write.
	WriteErr error
}

// NewNoteStore creates a new in-memory note store.
func NewNoteStore() *NoteStore {
	return &NoteStore{
		notes: make(map[string]string),
	}
}

// Put seeds a note without counting it as a write.
func (s *NoteStore) Put(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[path] = content
}

// Read returns the note content.
func (s *NoteStore) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.notes[path]
	if !ok {
		return "", fmt.Errorf("%s: %w", path, domain.ErrNoteNotFound)
	}
	return content, nil
}

// Write replaces the note content.
func (s *NoteStore) Write(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.notes[path] = content
	s.writes++
	return nil
}

// Writes returns how many times Write succeeded.
func (s *NoteStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
