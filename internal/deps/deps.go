package deps

import (
	"fmt"
	"strings"

	"semitone/internal/bundle"
	"semitone/internal/config"
)

// Requirement defines a bundled tool the engine relies on.
type Requirement struct {
	Name        string
	Tool        string
	Description string
	Optional    bool
}

// Status reports the availability of a bundled tool.
type Status struct {
	Name        string
	Tool        string
	Path        string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Defaults lists the bundled tools for the configured tool names. The
// prober is optional because probing degrades to absent metadata instead of
// blocking operations.
func Defaults(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "Transcoder",
			Tool:        cfg.Tools.Transcoder,
			Description: "Required for pitch-shifted conversion",
		},
		{
			Name:        "Prober",
			Tool:        cfg.Tools.Prober,
			Description: "Used for duration metadata",
			Optional:    true,
		},
		{
			Name:        "Downloader",
			Tool:        cfg.Tools.Downloader,
			Description: "Required for remote audio downloads",
		},
	}
}

// CheckBinaries evaluates the provided requirements against the bundle and
// reports availability. Lookups never consult $PATH; a tool missing from
// the bundle directory is unavailable even when installed system-wide.
func CheckBinaries(resolver *bundle.Resolver, requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		tool := strings.TrimSpace(req.Tool)
		status := Status{
			Name:        req.Name,
			Tool:        tool,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if tool == "" {
			status.Detail = "tool not configured"
			results = append(results, status)
			continue
		}
		if resolver == nil {
			status.Detail = "bundle directory unresolved"
			results = append(results, status)
			continue
		}
		path, err := resolver.Resolve(tool)
		if err != nil {
			status.Detail = fmt.Sprintf("%q not found in %s", tool, resolver.Dir())
			results = append(results, status)
			continue
		}
		status.Path = path
		status.Available = true
		results = append(results, status)
	}
	return results
}
