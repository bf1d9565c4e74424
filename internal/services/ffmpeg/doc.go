// Package ffmpeg builds and runs transcoder invocations for pitch-shifted
// audio conversion. The client owns the argument grammar, including the
// extension-to-muxer mapping, and delegates execution to a toolexec.Runner
// so outcome classification stays uniform across tools.
package ffmpeg
