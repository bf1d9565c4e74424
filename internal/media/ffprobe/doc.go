// Package ffprobe queries audio durations through the bundled ffprobe
// binary. It requests exactly one value in plain text rather than the full
// JSON document, keeping the parse surface to a single float. The package
// has no engine dependencies beyond the shared runner and error types, so
// any component that needs a duration can call it directly.
package ffprobe
