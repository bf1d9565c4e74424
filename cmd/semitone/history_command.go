package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"semitone/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recent operations from the journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			if cfg == nil || !cfg.History.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "History journal is disabled")
				return nil
			}

			return ctx.withJournal(func(store *history.Store) error {
				records, err := store.Recent(cmd.Context(), limit)
				if err != nil {
					return err
				}

				if asJSON {
					return writeJSON(cmd, historyViews(records))
				}

				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No operations recorded")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Time", "Kind", "Status", "Source", "Detail"},
					buildHistoryRows(records),
					0,
				))
				return nil
			})
		},
	}

	historyCmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of records to show")
	historyCmd.Flags().BoolVar(&asJSON, "json", false, "Emit records as JSON")

	historyCmd.AddCommand(newHistoryClearCommand(ctx))
	return historyCmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withJournal(func(store *history.Store) error {
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
				return nil
			})
		},
	}
}

// historyView is the JSON shape emitted by history --json.
type historyView struct {
	ID          int64  `json:"id"`
	OperationID string `json:"operationId"`
	Kind        string `json:"kind"`
	Source      string `json:"source"`
	Destination string `json:"destination,omitempty"`
	Status      string `json:"status"`
	Detail      string `json:"detail,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

func historyViews(records []history.Record) []historyView {
	views := make([]historyView, 0, len(records))
	for _, record := range records {
		views = append(views, historyView{
			ID:          record.ID,
			OperationID: record.OperationID,
			Kind:        record.Kind,
			Source:      record.Source,
			Destination: record.Destination,
			Status:      record.Status,
			Detail:      record.Detail,
			CreatedAt:   record.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return views
}

func buildHistoryRows(records []history.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			fmt.Sprintf("%d", record.ID),
			record.CreatedAt.UTC().Format("2006-01-02 15:04"),
			titleLabel(record.Kind),
			titleLabel(record.Status),
			truncateCell(record.Source, 48),
			truncateCell(record.Detail, 40),
		})
	}
	return rows
}

func truncateCell(value string, max int) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "-"
	}
	if len(value) <= max {
		return value
	}
	return value[:max-1] + "…"
}
