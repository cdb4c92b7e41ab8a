// Package lyrics normalises song lyrics for a distribution platform's lyric field.
//
// Each line is trimmed, header annotations and blank lines are dropped,
// one layer of surrounding quotes and any trailing punctuation run are
// stripped, and the first letter is upper-cased. Lines emptied by stripping
// are kept so the output keeps its shape.
package lyrics

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/songnote/internal/core/domain"
	"github.com/custodia-labs/songnote/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.LyricsNormaliser = (*Normaliser)(nil)

// headerPattern matches [Verse], (Chorus) and also mismatched pairs like [text).
var headerPattern = regexp.MustCompile(`^\s*[(\[].*[)\]]\s*$`)

const quoteChars = `'"`

// Normaliser handles song lyrics.
type Normaliser struct{}

// New creates a new lyrics normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise cleans a lyric block and reports what happened to its lines.
func (n *Normaliser) Normalise(text string, preset domain.PunctuationPreset) (string, domain.NormaliseStats) {
	results := Lines(text, preset)
	stats := Summarise(results)

	out := make([]string, 0, stats.Kept)
	for _, r := range results {
		if r.Kept() {
			out = append(out, r.Output)
		}
	}
	return strings.Join(out, "\n"), stats
}

// Normalise cleans a lyric block with the given preset.
func Normalise(text string, preset domain.PunctuationPreset) string {
	out, _ := New().Normalise(text, preset)
	return out
}

// LineResult records how a single input line was handled.
type LineResult struct {
	// Original is the line as read, without its newline.
	Original string

	// Kind is the classification of the trimmed line.
	Kind domain.LineKind

	// Output is the cleaned line. Only meaningful for lyric lines.
	Output string
}

// Kept reports whether the line appears in the output.
func (r LineResult) Kept() bool {
	return r.Kind == domain.LineLyric
}

// Changed reports whether the line was dropped or rewritten.
func (r LineResult) Changed() bool {
	return !r.Kept() || r.Output != r.Original
}

// Lines classifies and cleans every line of a lyric block, in order.
// Surrounding whitespace of the whole block is ignored.
func Lines(text string, preset domain.PunctuationPreset) []LineResult {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	raw := strings.Split(text, "\n")
	results := make([]LineResult, 0, len(raw))
	for _, line := range raw {
		kind := Classify(line)
		r := LineResult{Original: line, Kind: kind}
		if kind == domain.LineLyric {
			r.Output = CleanLine(line, preset)
		}
		results = append(results, r)
	}
	return results
}

// Summarise counts line outcomes.
func Summarise(results []LineResult) domain.NormaliseStats {
	stats := domain.NormaliseStats{Input: len(results)}
	for _, r := range results {
		switch r.Kind {
		case domain.LineBlank:
			stats.Blank++
		case domain.LineHeader:
			stats.Headers++
		case domain.LineLyric:
			stats.Kept++
			if r.Output == "" {
				stats.Emptied++
			}
		}
	}
	return stats
}

// Classify reports whether a line is blank, a header annotation, or lyric text.
func Classify(line string) domain.LineKind {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return domain.LineBlank
	case headerPattern.MatchString(trimmed):
		return domain.LineHeader
	default:
		return domain.LineLyric
	}
}

// CleanLine strips quotes and trailing punctuation from a lyric line
// and capitalises its first letter. The result may be empty.
func CleanLine(line string, preset domain.PunctuationPreset) string {
	s := strings.TrimSpace(line)
	s = stripQuotes(s)
	s = strings.TrimRightFunc(s, preset.Contains)
	return capitaliseFirst(s)
}

// stripQuotes removes at most one quote mark from each end.
func stripQuotes(s string) string {
	if s != "" && strings.ContainsRune(quoteChars, rune(s[0])) {
		s = s[1:]
	}
	if s != "" && strings.ContainsRune(quoteChars, rune(s[len(s)-1])) {
		s = s[:len(s)-1]
	}
	return s
}

func capitaliseFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}
