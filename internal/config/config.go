package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	BundleDir string `toml:"bundle_dir"`
	LogDir    string `toml:"log_dir"`
}

// Tools contains the bundled executable names and per-operation timeouts.
// Timeouts are in seconds; zero disables enforcement for that operation.
type Tools struct {
	Transcoder      string `toml:"transcoder"`
	Prober          string `toml:"prober"`
	Downloader      string `toml:"downloader"`
	ConvertTimeout  int    `toml:"convert_timeout"`
	ProbeTimeout    int    `toml:"probe_timeout"`
	DownloadTimeout int    `toml:"download_timeout"`
}

// Conversion contains transcoder invocation settings.
type Conversion struct {
	SampleRate int `toml:"sample_rate"`
}

// Download contains downloader invocation settings.
type Download struct {
	AllowedDomains []string `toml:"allowed_domains"`
	AudioQuality   string   `toml:"audio_quality"`
	OutputDir      string   `toml:"output_dir"`
}

// History contains configuration for the operation journal.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for semitone.
//
// Configuration sections by subsystem:
//   - Paths: bundle directory override and log directory
//   - Tools: bundled executable names plus operation timeouts
//   - Conversion: transcoder filter settings
//   - Download: downloader allowlist and output settings
//   - History: operation journal location
//   - Logging: log format and level
type Config struct {
	Paths      Paths      `toml:"paths"`
	Tools      Tools      `toml:"tools"`
	Conversion Conversion `toml:"conversion"`
	Download   Download   `toml:"download"`
	History    History    `toml:"history"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/semitone/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config
// has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("semitone.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories semitone writes to. The history
// parent is created on a best-effort basis so the CLI still works when the
// journal location is unavailable.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		if err := os.MkdirAll(c.Paths.LogDir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", c.Paths.LogDir, err)
		}
	}
	if c.History.Enabled && strings.TrimSpace(c.History.Path) != "" {
		_ = os.MkdirAll(filepath.Dir(c.History.Path), 0o755)
	}
	return nil
}

// ConvertTimeout returns the transcoder run deadline; zero means unbounded.
func (c *Config) ConvertTimeout() time.Duration {
	return time.Duration(c.Tools.ConvertTimeout) * time.Second
}

// ProbeTimeout returns the prober run deadline; zero means unbounded.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.Tools.ProbeTimeout) * time.Second
}

// DownloadTimeout returns the downloader run deadline; zero means unbounded.
func (c *Config) DownloadTimeout() time.Duration {
	return time.Duration(c.Tools.DownloadTimeout) * time.Second
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func defaultHistoryPath() string {
	if base, ok := os.LookupEnv("XDG_DATA_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "semitone", "history.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.local/share/semitone/history.db"
	}
	return filepath.Join(home, ".local", "share", "semitone", "history.db")
}

// CreateSample writes a sample configuration file to the given path.
func CreateSample(path string) error {
	sample := sampleConfig

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
