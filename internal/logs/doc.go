// Package logs provides file tailing and offset helpers for log viewing.
//
// It streams the semitone log file with bounded memory usage, supports
// negative offsets for "tail last N lines" operations, and powers follow-mode
// updates for `semitone logs --follow`. Callers supply context deadlines so
// background polling shuts down cleanly when the CLI exits.
package logs
