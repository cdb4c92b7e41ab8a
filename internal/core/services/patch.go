package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/songnote/internal/core/domain"
	"github.com/custodia-labs/songnote/internal/core/ports/driven"
	"github.com/custodia-labs/songnote/internal/core/ports/driving"
	"github.com/custodia-labs/songnote/internal/logger"
)

// Ensure PatchService implements the interface.
var _ driving.PatchService = (*PatchService)(nil)

// PatchService splices normalised master lyrics into a note's target section.
type PatchService struct {
	notes      driven.NoteStore
	normaliser driven.LyricsNormaliser
}

// NewPatchService creates a new patch service.
func NewPatchService(notes driven.NoteStore, normaliser driven.LyricsNormaliser) *PatchService {
	return &PatchService{
		notes:      notes,
		normaliser: normaliser,
	}
}

// NormaliseText normalises a raw lyric block.
func (s *PatchService) NormaliseText(text string, preset domain.PunctuationPreset) (string, domain.NormaliseStats) {
	return s.normaliser.Normalise(text, preset)
}

// NormaliseNote reads path through the note store and normalises all of it.
func (s *PatchService) NormaliseNote(
	ctx context.Context, path string, preset domain.PunctuationPreset,
) (string, domain.NormaliseStats, error) {
	if path == "" {
		return "", domain.NormaliseStats{}, domain.ErrInvalidInput
	}

	content, err := s.notes.Read(ctx, path)
	if err != nil {
		return "", domain.NormaliseStats{}, fmt.Errorf("failed to read note: %w", err)
	}

	out, stats := s.normaliser.Normalise(content, preset)
	return out, stats, nil
}

// Preview reads the note and computes the patched content without writing.
func (s *PatchService) Preview(ctx context.Context, path string, opts domain.PatchOptions) (*domain.PatchResult, error) {
	if path == "" {
		return nil, domain.ErrInvalidInput
	}

	logger.Section("Patch Preview")
	logger.Debug("Note: %s", path)

	content, err := s.notes.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read note: %w", err)
	}

	result, err := s.PatchContent(content, opts)
	if err != nil {
		return nil, err
	}
	result.Path = path
	return result, nil
}

// Patch computes the patched content and writes it back when it changed.
// Nothing is written unless both markers were found.
func (s *PatchService) Patch(ctx context.Context, path string, opts domain.PatchOptions) (*domain.PatchResult, error) {
	result, err := s.Preview(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	if err := s.Apply(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Apply writes a previewed result to its note. It refuses to write when the
// note no longer matches the content the result was computed from.
func (s *PatchService) Apply(ctx context.Context, result *domain.PatchResult) error {
	if result == nil || result.Path == "" {
		return domain.ErrInvalidInput
	}

	if !result.Changed {
		logger.Info("Note already up to date, skipping write")
		return nil
	}

	current, err := s.notes.Read(ctx, result.Path)
	if err != nil {
		return fmt.Errorf("failed to read note: %w", err)
	}
	if current != result.OldContent {
		return fmt.Errorf("%w: %s", domain.ErrNoteChanged, result.Path)
	}

	if err := s.notes.Write(ctx, result.Path, result.NewContent); err != nil {
		return fmt.Errorf("failed to write note: %w", err)
	}
	result.Written = true
	logger.Info("Wrote %d bytes to %s", len(result.NewContent), result.Path)
	return nil
}

// PatchContent splices normalised lyrics into content held in memory.
func (s *PatchService) PatchContent(content string, opts domain.PatchOptions) (*domain.PatchResult, error) {
	layout := opts.Layout
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("incomplete note layout: %w", err)
	}

	source, ok := FindSection(content, layout.SourceMarker, layout.Delimiter)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrSourceMarkerNotFound, layout.SourceMarker)
	}
	logger.Debug("Source section: bytes %d-%d", source.Start, source.End)

	sourceLyrics := ExtractLyricBlock(source.Slice(content))
	lyrics, stats := s.normaliser.Normalise(sourceLyrics, opts.Preset)
	logger.Debug("Normalised with %s preset: %d kept, %d headers, %d blank, %d emptied",
		opts.Preset, stats.Kept, stats.Headers, stats.Blank, stats.Emptied)

	target, ok := FindSection(content, layout.TargetMarker, layout.Delimiter)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrTargetMarkerNotFound, layout.TargetMarker)
	}
	logger.Debug("Target section: bytes %d-%d", target.Start, target.End)

	newContent := SpliceSection(content, target, lyrics)

	return &domain.PatchResult{
		SourceLyrics:   sourceLyrics,
		Lyrics:         lyrics,
		OldContent:     content,
		NewContent:     newContent,
		PreviousTarget: target.Slice(content),
		Preset:         opts.Preset,
		Stats:          stats,
		Changed:        newContent != content,
	}, nil
}
