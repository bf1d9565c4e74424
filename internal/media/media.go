package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"semitone/internal/services"
)

// AudioFile describes a media asset on disk. Size is always populated when
// the file exists; Duration and Format are best-effort enrichments and may
// legitimately be absent. Absence is not an error.
type AudioFile struct {
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	Size     int64    `json:"size"`
	Duration *float64 `json:"duration,omitempty"`
	Format   string   `json:"format,omitempty"`
}

// WithDuration returns a copy with the probed duration attached.
func (f AudioFile) WithDuration(seconds float64) AudioFile {
	f.Duration = &seconds
	return f
}

// ConversionOptions is one conversion request. It is constructed by the
// caller per invocation and consumed once; nothing persists it.
type ConversionOptions struct {
	Semitones    int    `json:"semitones"`
	OutputFormat string `json:"outputFormat"`
	OutputPath   string `json:"outputPath"`
}

// ProcessingProgress is a reserved extension point for streaming progress
// updates during long transcodes and downloads. No producer is wired yet;
// the external tools do not expose a stable progress format to parse.
type ProcessingProgress struct {
	Percent     float64 `json:"percent"`
	Status      string  `json:"status"`
	CurrentFile string  `json:"currentFile,omitempty"`
}

// Describe builds the filesystem-backed fields of an AudioFile: display
// name, path, size, and the extension-derived format label. Duration stays
// nil; probing is a separate best-effort step layered on by callers.
func Describe(path string) (AudioFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return AudioFile{}, services.Wrap(services.ErrFileNotFound, "media", "describe", path, err)
	}
	if info.IsDir() {
		return AudioFile{}, services.Wrap(services.ErrFileNotFound, "media", "describe", fmt.Sprintf("%s is a directory", path), nil)
	}
	return AudioFile{
		Name:   filepath.Base(path),
		Path:   path,
		Size:   info.Size(),
		Format: FormatLabel(path),
	}, nil
}

// FormatLabel derives the uppercase format label from a path's extension.
// Paths without an extension yield an empty label.
func FormatLabel(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return ""
	}
	return strings.ToUpper(ext)
}
