package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"semitone/internal/bundle"
	"semitone/internal/deps"
	"semitone/internal/history"
	"semitone/internal/preflight"
)

// statusSnapshot is the JSON shape emitted by status --json.
type statusSnapshot struct {
	Capabilities preflight.Capabilities `json:"capabilities"`
	Tools        []toolView             `json:"tools"`
	Environment  []checkView            `json:"environment"`
	History      map[string]int         `json:"history,omitempty"`
}

type toolView struct {
	Name        string `json:"name"`
	Tool        string `json:"tool"`
	Path        string `json:"path,omitempty"`
	Description string `json:"description,omitempty"`
	Optional    bool   `json:"optional"`
	Available   bool   `json:"available"`
	Detail      string `json:"detail,omitempty"`
}

type checkView struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show runtime, bundled tool, and journal status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()

			resolver, err := bundle.NewResolver(cfg.Paths.BundleDir)
			if err != nil {
				resolver = nil
			}
			caps := preflight.Inspect(cfg, resolver)
			tools := preflight.CheckBundledTools(cfg)
			checks := preflight.RunAll(cmd.Context(), cfg)
			stats, statsErr := historyStats(ctx, cmd)

			if asJSON {
				return writeJSON(cmd, buildStatusSnapshot(caps, tools, checks, stats))
			}

			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)

			for _, line := range renderSectionHeader("Runtime", colorize) {
				fmt.Fprintln(stdout, line)
			}
			fmt.Fprintln(stdout, renderStatusLine("Platform", statusInfo, caps.Platform+"/"+caps.Arch, colorize))
			if caps.BundleDir != "" {
				fmt.Fprintln(stdout, renderStatusLine("Bundle directory", statusOK, caps.BundleDir, colorize))
			} else {
				fmt.Fprintln(stdout, renderStatusLine("Bundle directory", statusWarn, "not resolved", colorize))
			}
			fmt.Fprintln(stdout)

			for _, line := range renderSectionHeader("Bundled Tools", colorize) {
				fmt.Fprintln(stdout, line)
			}
			for _, line := range toolStatusLines(tools, colorize) {
				fmt.Fprintln(stdout, line)
			}
			fmt.Fprintln(stdout)

			for _, line := range renderSectionHeader("Environment", colorize) {
				fmt.Fprintln(stdout, line)
			}
			for _, check := range checks {
				kind := statusOK
				if !check.Passed {
					kind = statusError
				}
				fmt.Fprintln(stdout, renderStatusLine(check.Name, kind, check.Detail, colorize))
			}
			fmt.Fprintln(stdout)

			for _, line := range renderSectionHeader("History", colorize) {
				fmt.Fprintln(stdout, line)
			}
			writeHistorySection(cmd, ctx, stats, statsErr, colorize)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the status snapshot as JSON")
	return cmd
}

func buildStatusSnapshot(caps preflight.Capabilities, tools []deps.Status, checks []preflight.Result, stats map[string]int) statusSnapshot {
	snapshot := statusSnapshot{
		Capabilities: caps,
		Tools:        make([]toolView, 0, len(tools)),
		Environment:  make([]checkView, 0, len(checks)),
		History:      stats,
	}
	for _, tool := range tools {
		snapshot.Tools = append(snapshot.Tools, toolView{
			Name:        tool.Name,
			Tool:        tool.Tool,
			Path:        tool.Path,
			Description: tool.Description,
			Optional:    tool.Optional,
			Available:   tool.Available,
			Detail:      tool.Detail,
		})
	}
	for _, check := range checks {
		snapshot.Environment = append(snapshot.Environment, checkView{
			Name:   check.Name,
			Passed: check.Passed,
			Detail: check.Detail,
		})
	}
	return snapshot
}

// historyStats loads journal counts; a disabled journal returns nil stats
// with no error.
func historyStats(ctx *commandContext, cmd *cobra.Command) (map[string]int, error) {
	cfg := ctx.configValue()
	if cfg == nil || !cfg.History.Enabled {
		return nil, nil
	}
	var stats map[string]int
	err := ctx.withJournal(func(store *history.Store) error {
		loaded, err := store.Stats(cmd.Context())
		if err != nil {
			return err
		}
		stats = loaded
		return nil
	})
	return stats, err
}

func toolStatusLines(statuses []deps.Status, colorize bool) []string {
	lines := make([]string, 0, len(statuses)+1)
	missing := make([]string, 0)
	for _, status := range statuses {
		if status.Available {
			lines = append(lines, renderStatusLine(status.Name, statusOK, fmt.Sprintf("Ready (%s)", status.Path), colorize))
			continue
		}

		detail := strings.TrimSpace(status.Detail)
		if detail == "" {
			detail = "not available"
		}
		kind := statusError
		if status.Optional {
			kind = statusWarn
		} else {
			missing = append(missing, status.Name)
		}
		lines = append(lines, renderStatusLine(status.Name, kind, detail, colorize))
	}
	if len(missing) > 0 {
		lines = append(lines, renderStatusLine("Missing tools", statusWarn,
			fmt.Sprintf("%s (place the executables next to the semitone binary or set bundle_dir)", strings.Join(missing, ", ")), colorize))
	}
	return lines
}

func writeHistorySection(cmd *cobra.Command, ctx *commandContext, stats map[string]int, statsErr error, colorize bool) {
	stdout := cmd.OutOrStdout()
	cfg := ctx.configValue()
	if cfg == nil || !cfg.History.Enabled {
		fmt.Fprintln(stdout, renderStatusLine("Journal", statusInfo, "disabled", colorize))
		return
	}
	if statsErr != nil {
		fmt.Fprintln(stdout, renderStatusLine("Journal", statusWarn, statsErr.Error(), colorize))
		return
	}
	if len(stats) == 0 {
		fmt.Fprintln(stdout, "No operations recorded")
		return
	}

	statuses := make([]string, 0, len(stats))
	for status := range stats {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	rows := make([][]string, 0, len(statuses))
	for _, status := range statuses {
		rows = append(rows, []string{titleLabel(status), fmt.Sprintf("%d", stats[status])})
	}
	fmt.Fprintln(stdout, renderTable([]string{"Status", "Count"}, rows, 1))
}
