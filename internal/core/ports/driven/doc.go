// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - ConfigStore: Application configuration (TOML file, or memory in tests)
//   - NoteStore: Song note persistence (filesystem, or memory in tests)
//   - LyricsNormaliser: Line-by-line lyric cleanup
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
