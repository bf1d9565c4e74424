package probe_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"semitone/internal/bundle"
	"semitone/internal/config"
	"semitone/internal/logging"
	"semitone/internal/probe"
	"semitone/internal/services"
	"semitone/internal/toolexec"
)

type stubRunner struct {
	result toolexec.Result
	err    error
	calls  int
}

func (s *stubRunner) Run(ctx context.Context, binary string, args []string) (toolexec.Result, error) {
	s.calls++
	return s.result, s.err
}

func newTestProber(t *testing.T, bundleDir string, runner toolexec.Runner) *probe.Prober {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.BundleDir = bundleDir
	resolver, err := bundle.NewResolver(bundleDir)
	if err != nil {
		t.Fatalf("NewResolver returned error: %v", err)
	}
	return probe.NewProberWithDependencies(&cfg, logging.NewNop(), resolver, runner)
}

func writeTool(t *testing.T, dir, name string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write tool: %v", err)
	}
}

func writeAudio(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
		t.Fatalf("write audio file: %v", err)
	}
	return path
}

func TestDescribeMissingFileIsAnError(t *testing.T) {
	bundleDir := t.TempDir()
	writeTool(t, bundleDir, "ffprobe")
	prober := newTestProber(t, bundleDir, &stubRunner{})

	_, err := prober.Describe(context.Background(), filepath.Join(t.TempDir(), "missing.mp3"))
	if !errors.Is(err, services.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestDescribeAttachesProbedDuration(t *testing.T) {
	bundleDir := t.TempDir()
	writeTool(t, bundleDir, "ffprobe")
	runner := &stubRunner{result: toolexec.Result{Stdout: "215.384\n"}}
	prober := newTestProber(t, bundleDir, runner)

	path := writeAudio(t, t.TempDir(), "track.mp3")
	file, err := prober.Describe(context.Background(), path)
	if err != nil {
		t.Fatalf("Describe returned error: %v", err)
	}
	if file.Duration == nil || *file.Duration != 215.384 {
		t.Fatalf("expected probed duration, got %v", file.Duration)
	}
	if file.Name != "track.mp3" || file.Size != 5 || file.Format != "MP3" {
		t.Fatalf("unexpected descriptor %+v", file)
	}
	if runner.calls != 1 {
		t.Fatalf("expected one probe invocation, got %d", runner.calls)
	}
}

func TestDescribeToolFailureLeavesDurationAbsent(t *testing.T) {
	bundleDir := t.TempDir()
	writeTool(t, bundleDir, "ffprobe")
	runner := &stubRunner{err: &toolexec.ExitError{Binary: "ffprobe", ExitCode: 1, Stderr: "invalid data"}}
	prober := newTestProber(t, bundleDir, runner)

	path := writeAudio(t, t.TempDir(), "track.mp3")
	file, err := prober.Describe(context.Background(), path)
	if err != nil {
		t.Fatalf("probe failure must not fail Describe, got %v", err)
	}
	if file.Duration != nil {
		t.Fatalf("expected absent duration, got %v", *file.Duration)
	}
	if file.Size != 5 {
		t.Fatalf("expected filesystem fields populated, got %+v", file)
	}
}

func TestDescribeUnparseableOutputLeavesDurationAbsent(t *testing.T) {
	bundleDir := t.TempDir()
	writeTool(t, bundleDir, "ffprobe")
	runner := &stubRunner{result: toolexec.Result{Stdout: "N/A\n"}}
	prober := newTestProber(t, bundleDir, runner)

	path := writeAudio(t, t.TempDir(), "track.flac")
	file, err := prober.Describe(context.Background(), path)
	if err != nil {
		t.Fatalf("Describe returned error: %v", err)
	}
	if file.Duration != nil {
		t.Fatalf("expected absent duration, got %v", *file.Duration)
	}
}

func TestDescribeMissingProberSkipsEnrichment(t *testing.T) {
	runner := &stubRunner{}
	prober := newTestProber(t, t.TempDir(), runner)

	path := writeAudio(t, t.TempDir(), "track.ogg")
	file, err := prober.Describe(context.Background(), path)
	if err != nil {
		t.Fatalf("Describe returned error: %v", err)
	}
	if file.Duration != nil {
		t.Fatalf("expected absent duration, got %v", *file.Duration)
	}
	if runner.calls != 0 {
		t.Fatalf("expected no probe invocation without a prober binary, got %d", runner.calls)
	}
}
