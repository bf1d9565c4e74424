package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"semitone/internal/config"
	"semitone/internal/engine"
	"semitone/internal/history"
	"semitone/internal/logging"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	engineOnce sync.Once
	engine     *engine.Engine
	logger     *slog.Logger
	engineErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.TrimSpace(*c.logLevelFlag)
		}
		if c.logFormatFlag != nil && strings.TrimSpace(*c.logFormatFlag) != "" {
			cfg.Logging.Format = strings.TrimSpace(*c.logFormatFlag)
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

// ensureEngine builds the logger and engine once and reuses them across the
// command invocation.
func (c *commandContext) ensureEngine() (*engine.Engine, error) {
	c.engineOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.engineErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.engineErr = err
			return
		}
		eng, err := engine.New(cfg, logger)
		if err != nil {
			c.engineErr = err
			return
		}
		c.logger = logger
		c.engine = eng
	})
	return c.engine, c.engineErr
}

func (c *commandContext) loggerValue() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logging.NewNop()
}

// journal appends one record to the operation journal. Journal failures never
// fail the command; the operation itself already succeeded or failed on its
// own terms.
func (c *commandContext) journal(record history.Record) {
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil || !cfg.History.Enabled {
		return
	}
	store, err := history.Open(cfg)
	if err != nil {
		c.loggerValue().Warn("operation journal unavailable", logging.Error(err))
		return
	}
	defer store.Close()
	if _, err := store.Append(context.Background(), record); err != nil {
		c.loggerValue().Warn("journal append failed", logging.Error(err))
	}
}

// withJournal opens the journal, runs fn, and closes the store afterwards.
func (c *commandContext) withJournal(fn func(*history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := history.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
