package media

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"semitone/internal/services"
)

func TestDescribePopulatesFilesystemFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track.mp3")
	if err := os.WriteFile(path, []byte("abcdef"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	file, err := Describe(path)
	if err != nil {
		t.Fatalf("Describe returned error: %v", err)
	}
	if file.Name != "track.mp3" {
		t.Fatalf("expected name track.mp3, got %q", file.Name)
	}
	if file.Path != path {
		t.Fatalf("expected path %q, got %q", path, file.Path)
	}
	if file.Size != 6 {
		t.Fatalf("expected size 6, got %d", file.Size)
	}
	if file.Format != "MP3" {
		t.Fatalf("expected format MP3, got %q", file.Format)
	}
	if file.Duration != nil {
		t.Fatalf("expected duration to be nil before probing, got %v", *file.Duration)
	}
}

func TestDescribeMissingFile(t *testing.T) {
	_, err := Describe(filepath.Join(t.TempDir(), "missing.mp3"))
	if !errors.Is(err, services.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestDescribeRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := Describe(dir)
	if !errors.Is(err, services.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound for directory, got %v", err)
	}
}

func TestWithDurationCopies(t *testing.T) {
	base := AudioFile{Name: "a.wav", Path: "/tmp/a.wav", Size: 10}
	probed := base.WithDuration(12.5)
	if probed.Duration == nil || *probed.Duration != 12.5 {
		t.Fatalf("expected duration 12.5, got %v", probed.Duration)
	}
	if base.Duration != nil {
		t.Fatalf("expected original to stay unprobed")
	}
}

func TestSupportedExtension(t *testing.T) {
	cases := []struct {
		ext  string
		want bool
	}{
		{"mp3", true},
		{".mp3", true},
		{"MP3", true},
		{".FLAC", true},
		{"wav", true},
		{"m4a", true},
		{"aac", true},
		{"ogg", true},
		{"txt", false},
		{"mp4", false},
		{"", false},
		{".", false},
	}
	for _, tc := range cases {
		if got := SupportedExtension(tc.ext); got != tc.want {
			t.Fatalf("SupportedExtension(%q) = %v, want %v", tc.ext, got, tc.want)
		}
	}
}

func TestSupportedPath(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/music/song.mp3", true},
		{"/music/song.OGG", true},
		{"/music/archive.tar.gz", false},
		{"/music/noext", false},
		{"/music/trailingdot.", false},
	}
	for _, tc := range cases {
		if got := SupportedPath(tc.path); got != tc.want {
			t.Fatalf("SupportedPath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestSupportedExtensionsSorted(t *testing.T) {
	exts := SupportedExtensions()
	if len(exts) != 6 {
		t.Fatalf("expected 6 extensions, got %d: %v", len(exts), exts)
	}
	for i := 1; i < len(exts); i++ {
		if exts[i-1] >= exts[i] {
			t.Fatalf("extensions not sorted: %v", exts)
		}
	}
}

func TestFormatLabel(t *testing.T) {
	if got := FormatLabel("/a/b/track.flac"); got != "FLAC" {
		t.Fatalf("expected FLAC, got %q", got)
	}
	if got := FormatLabel("/a/b/noext"); got != "" {
		t.Fatalf("expected empty label, got %q", got)
	}
}
