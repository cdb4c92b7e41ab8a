package domain

const unknownDescription = "Unknown"

// PunctuationPreset names a set of trailing punctuation stripped from lyric lines.
type PunctuationPreset string

// Available punctuation presets.
const (
	// PunctuationBasic strips . , ! ? ; :
	PunctuationBasic PunctuationPreset = "basic"

	// PunctuationExtended strips the basic set plus em dash, en dash and hyphen.
	PunctuationExtended PunctuationPreset = "extended"
)

// DefaultPunctuationPreset is used when no preset is configured.
const DefaultPunctuationPreset = PunctuationExtended

const (
	basicPunctuation = ".,!?;:"
	dashPunctuation  = "—–-"
)

// AllPunctuationPresets returns every recognised preset in display order.
func AllPunctuationPresets() []PunctuationPreset {
	return []PunctuationPreset{PunctuationBasic, PunctuationExtended}
}

// IsValid returns true if the preset is recognised.
func (p PunctuationPreset) IsValid() bool {
	switch p {
	case PunctuationBasic, PunctuationExtended:
		return true
	default:
		return false
	}
}

// Chars returns the runes stripped from line ends under this preset.
// Unknown presets resolve to the default preset.
func (p PunctuationPreset) Chars() string {
	switch p {
	case PunctuationBasic:
		return basicPunctuation
	case PunctuationExtended:
		return basicPunctuation + dashPunctuation
	default:
		return DefaultPunctuationPreset.Chars()
	}
}

// Contains reports whether r is stripped under this preset.
func (p PunctuationPreset) Contains(r rune) bool {
	for _, c := range p.Chars() {
		if c == r {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (p PunctuationPreset) String() string {
	return string(p)
}

// Description returns a human-readable description of the preset.
func (p PunctuationPreset) Description() string {
	switch p {
	case PunctuationBasic:
		return "Basic (. , ! ? ; :)"
	case PunctuationExtended:
		return "Extended (basic + em dash, en dash, hyphen)"
	default:
		return unknownDescription
	}
}

// ParsePunctuationPreset converts a name into a preset.
func ParsePunctuationPreset(name string) (PunctuationPreset, error) {
	p := PunctuationPreset(name)
	if !p.IsValid() {
		return "", ErrInvalidPreset
	}
	return p, nil
}

// LineKind classifies a single lyric line.
type LineKind int

const (
	// LineBlank is empty after trimming.
	LineBlank LineKind = iota

	// LineHeader is a fully bracketed annotation such as [Verse] or (Chorus).
	LineHeader

	// LineLyric is singable text.
	LineLyric
)

// String returns the string representation.
func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineHeader:
		return "header"
	case LineLyric:
		return "lyric"
	default:
		return "unknown"
	}
}

// NormaliseStats counts what happened to each input line.
type NormaliseStats struct {
	// Input is the number of lines read.
	Input int

	// Kept is the number of lines written to the output.
	Kept int

	// Headers is the number of header annotations dropped.
	Headers int

	// Blank is the number of blank lines dropped.
	Blank int

	// Emptied is the number of kept lines reduced to "" by stripping.
	Emptied int
}

// Dropped returns the number of omitted lines.
func (s NormaliseStats) Dropped() int {
	return s.Headers + s.Blank
}
