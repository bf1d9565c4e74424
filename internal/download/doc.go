// Package download orchestrates remote audio fetches through the bundled
// downloader: it gates URLs behind a domain allowlist, recovers the
// produced file path from the tool's stdout, and enriches the result with
// probed metadata. The downloader's zero exit status is trusted even when
// no output path can be resolved locally, so a missing descriptor is a
// degraded success rather than an error.
package download
