package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"semitone/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.BundleDir = filepath.Join(base, "bundle")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Download.OutputDir = filepath.Join(base, "downloads")
	cfgVal.History.Path = filepath.Join(base, "history", "history.db")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithAllowedDomains overrides the download allowlist on the test config.
func WithAllowedDomains(domains ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Download.AllowedDomains = domains
	}
}

// WithBundledTools writes stub executables for the provided names into the
// bundle directory. If names is empty, the default semitone tools are stubbed.
func WithBundledTools(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"ffmpeg", "ffprobe", "yt-dlp"}
		}
		bundleDir := b.cfg.Paths.BundleDir
		if err := os.MkdirAll(bundleDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bundle dir: %v", err)
		}
		script := []byte("#!/bin/sh\nexit 0\n")
		for _, name := range names {
			target := filepath.Join(bundleDir, name)
			if err := os.WriteFile(target, script, 0o755); err != nil {
				b.t.Fatalf("write stub %s: %v", name, err)
			}
		}
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.BundleDir)
}
