package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"semitone/internal/config"
	"semitone/internal/history"
	"semitone/internal/services"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "probe <file>",
		Short: "Show metadata for an audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve input path: %w", err)
			}

			eng, err := ctx.ensureEngine()
			if err != nil {
				return err
			}

			opID := uuid.NewString()
			opCtx := services.WithOperationID(cmd.Context(), opID)
			file, err := eng.Probe(opCtx, path)
			ctx.journalOutcome(opID, history.KindProbe, path, "", err)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, file)
			}
			for _, line := range describeAudioFile(file) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit metadata as JSON")
	return cmd
}
