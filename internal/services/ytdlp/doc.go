// Package ytdlp builds and runs downloader invocations for audio-only
// extraction. The client owns the argument grammar, including the output
// filename template and the print directive that surfaces the final file
// path on stdout, and delegates execution to a toolexec.Runner.
package ytdlp
