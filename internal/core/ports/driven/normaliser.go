package driven

import "github.com/custodia-labs/songnote/internal/core/domain"

// LyricsNormaliser turns a raw lyric block into distribution-ready text.
// Implementations never fail: every input maps to a defined output.
type LyricsNormaliser interface {
	// Normalise returns the cleaned block and per-line statistics.
	Normalise(text string, preset domain.PunctuationPreset) (string, domain.NormaliseStats)
}
