// Package normalisers provides text normalisers used by songnote.
// Each subpackage knows how to clean one kind of text for a specific target.
//
//   - lyrics: song lyrics for a distribution platform's lyric field
package normalisers
