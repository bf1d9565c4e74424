// Package probe assembles audio file descriptors. The filesystem fields
// are authoritative and a missing file is an error; the duration comes
// from the bundled prober and is strictly best-effort, so callers always
// get a usable descriptor when the file exists.
package probe
