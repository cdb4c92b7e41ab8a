// Package watch re-runs a handler whenever a single song note changes on disk.
//
// The note's parent directory is watched rather than the file itself so that
// editors which save by writing a temp file and renaming it over the note are
// still picked up. Bursts of events are coalesced into a single
// handler run once the note has been quiet for the watcher delay.
package watch
