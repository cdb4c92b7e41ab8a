package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPreset indicates an unknown punctuation preset or layout name.
	ErrInvalidPreset = errors.New("invalid preset")

	// Note Errors.

	// ErrNoteNotFound indicates the song note file does not exist.
	ErrNoteNotFound = errors.New("note not found")

	// ErrNoteChanged indicates the note was edited after it was previewed.
	ErrNoteChanged = errors.New("note changed since preview")

	// ErrMarkerNotFound is the parent of the section marker errors below.
	ErrMarkerNotFound = errors.New("marker not found")

	// ErrSourceMarkerNotFound indicates the master lyrics heading is missing.
	// The note is left untouched.
	ErrSourceMarkerNotFound = &markerError{role: "source"}

	// ErrTargetMarkerNotFound indicates the normalised lyrics heading is missing.
	// The note is left untouched.
	ErrTargetMarkerNotFound = &markerError{role: "target"}
)

// markerError lets both marker errors match ErrMarkerNotFound via errors.Is
// while staying distinct from each other.
type markerError struct {
	role string
}

func (e *markerError) Error() string {
	return e.role + " " + ErrMarkerNotFound.Error()
}

func (e *markerError) Unwrap() error {
	return ErrMarkerNotFound
}
