package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"semitone/internal/logging"
	"semitone/internal/logs"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var follow bool
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Display recent log output",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := logging.LogFilePath(cfg)
			if path == "" {
				return errors.New("log directory is not configured")
			}

			runCtx := cmd.Context()
			result, err := logs.Tail(runCtx, path, logs.TailOptions{Offset: -1, Limit: lines})
			if err != nil {
				return err
			}
			printed := false
			for _, line := range result.Lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
				printed = true
			}
			if !follow {
				if !printed {
					fmt.Fprintln(cmd.OutOrStdout(), "No log entries available")
				}
				return nil
			}

			offset := result.Offset
			for {
				result, err := logs.Tail(runCtx, path, logs.TailOptions{
					Offset: offset,
					Follow: true,
					Wait:   time.Second,
				})
				if err != nil {
					if errors.Is(err, context.Canceled) {
						return nil
					}
					return err
				}
				for _, line := range result.Lines {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				offset = result.Offset

				select {
				case <-runCtx.Done():
					return nil
				default:
				}
			}
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Follow log output")
	cmd.Flags().IntVarP(&lines, "lines", "n", 10, "Number of lines to show")
	return cmd
}
