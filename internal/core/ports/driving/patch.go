package driving

import (
	"context"

	"github.com/custodia-labs/songnote/internal/core/domain"
)

// PatchService normalises a note's master lyrics into its target section.
type PatchService interface {
	// Preview computes the patched note without writing it.
	Preview(ctx context.Context, path string, opts domain.PatchOptions) (*domain.PatchResult, error)

	// Patch computes the patched note and writes it back in place.
	// Nothing is written when a marker is missing.
	Patch(ctx context.Context, path string, opts domain.PatchOptions) (*domain.PatchResult, error)

	// Apply writes a previously previewed result.
	Apply(ctx context.Context, result *domain.PatchResult) error

	// NormaliseNote reads a whole file and normalises it as one lyric block.
	NormaliseNote(ctx context.Context, path string, preset domain.PunctuationPreset) (string, domain.NormaliseStats, error)

	// NormaliseText normalises a raw lyric block.
	NormaliseText(text string, preset domain.PunctuationPreset) (string, domain.NormaliseStats)
}
