package services

import (
	"strings"

	"github.com/custodia-labs/songnote/internal/core/domain"
)

// italicPrefix marks a description line placed above the master lyrics.
const italicPrefix = "*"

// FindSection locates the body that follows marker, up to the next line
// whose trimmed text equals delimiter. When no such line follows, the body
// runs to the end of content. The boolean is false when marker is absent.
func FindSection(content, marker, delimiter string) (domain.Span, bool) {
	idx := strings.Index(content, marker)
	if idx == -1 {
		return domain.Span{}, false
	}

	start := idx + len(marker)
	return domain.Span{Start: start, End: findDelimiterLine(content, start, delimiter)}, true
}

// findDelimiterLine returns the offset of the first delimiter line starting
// after the line that contains from, or len(content).
func findDelimiterLine(content string, from int, delimiter string) int {
	nl := strings.IndexByte(content[from:], '\n')
	if nl == -1 {
		return len(content)
	}

	pos := from + nl + 1
	for pos < len(content) {
		end := strings.IndexByte(content[pos:], '\n')
		line := content[pos:]
		if end != -1 {
			line = content[pos : pos+end]
		}
		if strings.TrimSpace(line) == delimiter {
			return pos
		}
		if end == -1 {
			break
		}
		pos += end + 1
	}
	return len(content)
}

// ExtractLyricBlock trims a section body and drops leading lines that are
// blank or italic descriptions. If every line is blank or italic the whole
// trimmed body is returned.
func ExtractLyricBlock(body string) string {
	lines := strings.Split(strings.TrimSpace(body), "\n")

	first := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, italicPrefix) {
			first = i
			break
		}
	}
	return strings.Join(lines[first:], "\n")
}

// SpliceSection replaces the body of span with lyrics framed by one blank
// line above and below. Notes using CRLF line endings get CRLF throughout.
func SpliceSection(content string, span domain.Span, lyrics string) string {
	nl := lineEnding(content)
	if nl != "\n" {
		lyrics = strings.ReplaceAll(lyrics, "\n", nl)
	}
	frame := nl + nl

	var b strings.Builder
	b.Grow(len(content) - span.Len() + len(lyrics) + 2*len(frame))
	b.WriteString(content[:span.Start])
	b.WriteString(frame)
	b.WriteString(lyrics)
	b.WriteString(frame)
	b.WriteString(content[span.End:])
	return b.String()
}

// lineEnding returns "\r\n" when content uses CRLF line endings, else "\n".
func lineEnding(content string) string {
	if strings.Contains(content, "\r\n") {
		return "\r\n"
	}
	return "\n"
}
