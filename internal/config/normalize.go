package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTools()
	c.normalizeConversion()
	if err := c.normalizeDownload(); err != nil {
		return err
	}
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	// An empty bundle_dir means "directory of the running executable" and is
	// resolved at runtime rather than here.
	if strings.TrimSpace(c.Paths.BundleDir) != "" {
		if c.Paths.BundleDir, err = expandPath(c.Paths.BundleDir); err != nil {
			return fmt.Errorf("paths.bundle_dir: %w", err)
		}
	} else {
		c.Paths.BundleDir = ""
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTools() {
	c.Tools.Transcoder = strings.TrimSpace(c.Tools.Transcoder)
	if c.Tools.Transcoder == "" {
		c.Tools.Transcoder = defaultTranscoder
	}
	c.Tools.Prober = strings.TrimSpace(c.Tools.Prober)
	if c.Tools.Prober == "" {
		c.Tools.Prober = defaultProber
	}
	c.Tools.Downloader = strings.TrimSpace(c.Tools.Downloader)
	if c.Tools.Downloader == "" {
		c.Tools.Downloader = defaultDownloader
	}
}

func (c *Config) normalizeConversion() {
	if c.Conversion.SampleRate <= 0 {
		c.Conversion.SampleRate = defaultSampleRate
	}
}

func (c *Config) normalizeDownload() error {
	if len(c.Download.AllowedDomains) == 0 {
		c.Download.AllowedDomains = defaultAllowedDomains()
	} else {
		domains := make([]string, 0, len(c.Download.AllowedDomains))
		seen := make(map[string]struct{}, len(c.Download.AllowedDomains))
		for _, domain := range c.Download.AllowedDomains {
			normalized := strings.ToLower(strings.TrimSpace(domain))
			normalized = strings.TrimPrefix(normalized, "www.")
			if normalized == "" {
				continue
			}
			if _, exists := seen[normalized]; exists {
				continue
			}
			seen[normalized] = struct{}{}
			domains = append(domains, normalized)
		}
		if len(domains) == 0 {
			domains = defaultAllowedDomains()
		}
		c.Download.AllowedDomains = domains
	}
	c.Download.AudioQuality = strings.TrimSpace(c.Download.AudioQuality)
	if c.Download.AudioQuality == "" {
		c.Download.AudioQuality = defaultAudioQuality
	}
	if strings.TrimSpace(c.Download.OutputDir) == "" {
		c.Download.OutputDir = defaultDownloadDir
	}
	var err error
	if c.Download.OutputDir, err = expandPath(c.Download.OutputDir); err != nil {
		return fmt.Errorf("download.output_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath()
	}
	var err error
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
