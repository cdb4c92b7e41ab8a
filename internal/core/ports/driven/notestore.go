package driven

import "context"

// NoteStore reads and writes song notes.
// Read returns domain.ErrNoteNotFound (wrapped) when the note is missing.
type NoteStore interface {
	// Read returns the full note content.
	Read(ctx context.Context, path string) (string, error)

	// Write replaces the note content in place.
	Write(ctx context.Context, path, content string) error
}
