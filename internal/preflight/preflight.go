package preflight

import (
	"context"
	"path/filepath"

	"semitone/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the directory-access checks for the given config. Tool
// availability is reported separately via CheckBundledTools so callers can
// render the two groups independently.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	results = append(results, CheckDirectoryAccess("Download directory", cfg.Download.OutputDir))
	if cfg.History.Enabled && cfg.History.Path != "" {
		results = append(results, CheckDirectoryAccess("History directory", filepath.Dir(cfg.History.Path)))
	}

	return results
}
