package media

import (
	"sort"
	"strings"
)

// supportedExtensions is the closed set of audio container extensions the
// conversion pipeline accepts as input. Stored without the leading dot in
// lowercase form.
var supportedExtensions = map[string]struct{}{
	"mp3":  {},
	"wav":  {},
	"flac": {},
	"m4a":  {},
	"aac":  {},
	"ogg":  {},
}

// SupportedExtension reports whether ext names a supported audio container.
// The comparison is case-insensitive and tolerates a leading dot, so both
// ".MP3" and "mp3" match.
func SupportedExtension(ext string) bool {
	_, ok := supportedExtensions[normalizeExtension(ext)]
	return ok
}

// SupportedPath reports whether the path's extension names a supported
// audio container.
func SupportedPath(path string) bool {
	idx := strings.LastIndex(path, ".")
	if idx < 0 || idx == len(path)-1 {
		return false
	}
	return SupportedExtension(path[idx+1:])
}

// SupportedExtensions returns the supported extensions sorted for stable
// display in errors and help output.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(supportedExtensions))
	for ext := range supportedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
