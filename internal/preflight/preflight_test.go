package preflight_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"semitone/internal/bundle"
	"semitone/internal/config"
	"semitone/internal/preflight"
)

func writeTool(t *testing.T, dir, name string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write tool: %v", err)
	}
}

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	result := preflight.CheckDirectoryAccess("Log directory", dir)
	if !result.Passed {
		t.Fatalf("expected pass for writable dir, got %+v", result)
	}
	if !strings.Contains(result.Detail, dir) {
		t.Fatalf("expected path in detail, got %q", result.Detail)
	}

	missing := preflight.CheckDirectoryAccess("Log directory", filepath.Join(dir, "missing"))
	if missing.Passed {
		t.Fatalf("expected failure for missing dir, got %+v", missing)
	}
	if !strings.Contains(missing.Detail, "does not exist") {
		t.Fatalf("expected existence detail, got %q", missing.Detail)
	}

	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	notDir := preflight.CheckDirectoryAccess("Log directory", file)
	if notDir.Passed {
		t.Fatalf("expected failure for non-directory, got %+v", notDir)
	}

	blank := preflight.CheckDirectoryAccess("Log directory", "")
	if blank.Passed || blank.Detail != "not configured" {
		t.Fatalf("expected not-configured result, got %+v", blank)
	}
}

func TestRunAllChecksConfiguredDirectories(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Download.OutputDir = t.TempDir()
	cfg.History.Enabled = true
	cfg.History.Path = filepath.Join(t.TempDir(), "history.db")

	results := preflight.RunAll(context.Background(), &cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 checks, got %d: %+v", len(results), results)
	}
	for _, result := range results {
		if !result.Passed {
			t.Fatalf("expected all checks to pass, got %+v", result)
		}
	}

	if got := preflight.RunAll(context.Background(), nil); got != nil {
		t.Fatalf("expected nil results for nil config, got %+v", got)
	}
}

func TestCheckBundledTools(t *testing.T) {
	bundleDir := t.TempDir()
	writeTool(t, bundleDir, "ffmpeg")
	writeTool(t, bundleDir, "ffprobe")
	cfg := config.Default()
	cfg.Paths.BundleDir = bundleDir

	statuses := preflight.CheckBundledTools(&cfg)
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	available := map[string]bool{}
	for _, status := range statuses {
		available[status.Name] = status.Available
	}
	if !available["Transcoder"] || !available["Prober"] {
		t.Fatalf("expected transcoder and prober available, got %+v", statuses)
	}
	if available["Downloader"] {
		t.Fatalf("expected downloader unavailable, got %+v", statuses)
	}
}

func TestInspectReportsPlatformAndTools(t *testing.T) {
	bundleDir := t.TempDir()
	writeTool(t, bundleDir, "ffmpeg")
	writeTool(t, bundleDir, "yt-dlp")
	cfg := config.Default()
	cfg.Paths.BundleDir = bundleDir
	resolver, err := bundle.NewResolver(bundleDir)
	if err != nil {
		t.Fatalf("NewResolver returned error: %v", err)
	}

	caps := preflight.Inspect(&cfg, resolver)
	if caps.Platform != runtime.GOOS || caps.Arch != runtime.GOARCH {
		t.Fatalf("unexpected platform fields %+v", caps)
	}
	if caps.BundleDir != resolver.Dir() {
		t.Fatalf("expected bundle dir %q, got %q", resolver.Dir(), caps.BundleDir)
	}
	if !caps.TranscoderAvailable || !caps.DownloaderAvailable {
		t.Fatalf("expected transcoder and downloader available, got %+v", caps)
	}
	if caps.ProberAvailable {
		t.Fatalf("expected prober unavailable, got %+v", caps)
	}

	empty := preflight.Inspect(nil, nil)
	if empty.Platform == "" || empty.TranscoderAvailable {
		t.Fatalf("expected bare platform snapshot, got %+v", empty)
	}
}
