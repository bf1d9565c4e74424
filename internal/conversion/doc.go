// Package conversion orchestrates pitch-shifted audio transcodes: it
// validates the request against the filesystem and the supported format
// set, resolves the bundled transcoder, and runs it with the planned
// filter expression. All validation happens before any process spawns.
package conversion
