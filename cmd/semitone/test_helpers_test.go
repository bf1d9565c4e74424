package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir     string
	bundleDir   string
	musicDir    string
	downloadDir string
	configPath  string
}

// setupCLIEnv builds an isolated home, a bundle directory with stub tools,
// and a config file pointing at temp paths.
func setupCLIEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)

	env := &cliTestEnv{
		baseDir:     base,
		bundleDir:   filepath.Join(base, "bundle"),
		musicDir:    filepath.Join(base, "music"),
		downloadDir: filepath.Join(base, "downloads"),
		configPath:  filepath.Join(base, "config.toml"),
	}
	for _, dir := range []string{env.bundleDir, env.musicDir, env.downloadDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	writeStub(t, env.bundleDir, "ffmpeg", "#!/bin/sh\nexit 0\n")
	writeStub(t, env.bundleDir, "ffprobe", "#!/bin/sh\necho 215.384000\n")
	writeStub(t, env.bundleDir, "yt-dlp", "#!/bin/sh\nexit 0\n")

	writeCLIConfig(t, env)
	return env
}

func writeCLIConfig(t *testing.T, env *cliTestEnv) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
bundle_dir = %q
log_dir = %q

[download]
allowed_domains = ["youtube.com", "youtu.be"]
output_dir = %q

[history]
enabled = true
path = %q
`,
		env.bundleDir,
		filepath.Join(env.baseDir, "logs"),
		env.downloadDir,
		filepath.Join(env.baseDir, "history", "history.db"),
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func writeStub(t *testing.T, dir, name, script string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
}

func writeAudioFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.WriteFile(path, bytes.Repeat([]byte{0x41}, size), 0o644); err != nil {
		t.Fatalf("write audio file: %v", err)
	}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
