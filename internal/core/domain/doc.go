// Package domain defines the core business entities for songnote.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PunctuationPreset: the named strip sets used by the lyrics normaliser
//   - Layout: the marker and delimiter strings of a song note template
//   - Span: a located section body inside a note
//   - PatchResult: the outcome of splicing normalised lyrics into a note
//   - AppSettings: typed application settings
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
