package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateConversion(); err != nil {
		return err
	}
	if err := c.validateDownload(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTools() error {
	if strings.TrimSpace(c.Tools.Transcoder) == "" {
		return errors.New("tools.transcoder must be set")
	}
	if strings.TrimSpace(c.Tools.Prober) == "" {
		return errors.New("tools.prober must be set")
	}
	if strings.TrimSpace(c.Tools.Downloader) == "" {
		return errors.New("tools.downloader must be set")
	}
	return ensureNonNegativeMap(map[string]int{
		"tools.convert_timeout":  c.Tools.ConvertTimeout,
		"tools.probe_timeout":    c.Tools.ProbeTimeout,
		"tools.download_timeout": c.Tools.DownloadTimeout,
	})
}

func (c *Config) validateConversion() error {
	if c.Conversion.SampleRate <= 0 {
		return errors.New("conversion.sample_rate must be positive")
	}
	return nil
}

func (c *Config) validateDownload() error {
	if len(c.Download.AllowedDomains) == 0 {
		return errors.New("download.allowed_domains must include at least one domain")
	}
	quality, err := strconv.Atoi(c.Download.AudioQuality)
	if err != nil || quality < 0 || quality > 10 {
		return errors.New("download.audio_quality must be an integer between 0 (best) and 10 (worst)")
	}
	if strings.TrimSpace(c.Download.OutputDir) == "" {
		return errors.New("download.output_dir must be set")
	}
	return nil
}

func (c *Config) validateHistory() error {
	if c.History.Enabled && strings.TrimSpace(c.History.Path) == "" {
		return errors.New("history.path must be set when history.enabled is true")
	}
	return nil
}

func ensureNonNegativeMap(values map[string]int) error {
	for key, value := range values {
		if value < 0 {
			return fmt.Errorf("%s must be zero (disabled) or positive seconds", key)
		}
	}
	return nil
}
