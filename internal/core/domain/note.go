package domain

// LayoutName identifies a note template with known marker strings.
type LayoutName string

// Available note layouts.
const (
	// LayoutDefault matches notes using level-three lyric headings.
	LayoutDefault LayoutName = "default"

	// LayoutLegacy matches older notes using level-two lyric headings.
	LayoutLegacy LayoutName = "legacy"
)

// AllLayoutNames returns every known layout.
func AllLayoutNames() []LayoutName {
	return []LayoutName{LayoutDefault, LayoutLegacy}
}

// IsValid returns true if the layout name is recognised.
func (n LayoutName) IsValid() bool {
	switch n {
	case LayoutDefault, LayoutLegacy:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (n LayoutName) String() string {
	return string(n)
}

// Description returns a human-readable description of the layout.
func (n LayoutName) Description() string {
	switch n {
	case LayoutDefault:
		return "Default (### headings)"
	case LayoutLegacy:
		return "Legacy (## headings)"
	default:
		return unknownDescription
	}
}

// Layout holds the literal strings that delimit lyric sections in a note.
type Layout struct {
	// SourceMarker opens the master lyrics section.
	SourceMarker string

	// TargetMarker opens the section that receives normalised lyrics.
	TargetMarker string

	// Delimiter is the line that closes a section.
	Delimiter string
}

// LayoutFor returns the marker strings of a named layout.
// Unknown names resolve to the default layout.
func LayoutFor(name LayoutName) Layout {
	switch name {
	case LayoutLegacy:
		return Layout{
			SourceMarker: "## Lyrics (Master Version)",
			TargetMarker: "## Lyrics (Distrokid Normalised)",
			Delimiter:    "---",
		}
	default:
		return Layout{
			SourceMarker: "### Lyrics (Master Version)",
			TargetMarker: "### Lyrics (Distrokid Normalised)",
			Delimiter:    "---",
		}
	}
}

// Validate checks that every marker string is set.
func (l Layout) Validate() error {
	if l.SourceMarker == "" || l.TargetMarker == "" || l.Delimiter == "" {
		return ErrInvalidInput
	}
	return nil
}

// Span locates a section body within a note.
// Start is the offset just past the marker; End is the offset of the
// closing delimiter line, or the note length when no delimiter follows.
type Span struct {
	Start int
	End   int
}

// Len returns the body length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Slice returns the body text of the span within content.
func (s Span) Slice(content string) string {
	return content[s.Start:s.End]
}

// PatchOptions controls a single patch run.
type PatchOptions struct {
	// Preset is the punctuation strip set.
	Preset PunctuationPreset

	// Layout holds the section markers.
	Layout Layout
}

// PatchResult describes the outcome of splicing lyrics into a note.
type PatchResult struct {
	// Path is the note location, empty for in-memory content.
	Path string

	// SourceLyrics is the lyric block extracted from the source section.
	SourceLyrics string

	// Lyrics is the normalised output written into the target section.
	Lyrics string

	// OldContent is the note before patching.
	OldContent string

	// NewContent is the note after patching.
	NewContent string

	// PreviousTarget is the target section body before patching.
	PreviousTarget string

	// Preset is the punctuation preset the lyrics were normalised with.
	Preset PunctuationPreset

	// Stats summarises the normaliser run.
	Stats NormaliseStats

	// Changed is true when NewContent differs from OldContent.
	Changed bool

	// Written is true when NewContent was persisted.
	Written bool
}
