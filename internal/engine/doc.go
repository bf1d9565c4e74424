// Package engine exposes the media orchestration core as a single wired
// surface: convert, probe, download, and the capability snapshot. The CLI
// talks to this package only; the orchestrators underneath stay free of
// presentation concerns.
package engine
