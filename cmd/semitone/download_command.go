package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"semitone/internal/config"
	"semitone/internal/history"
	"semitone/internal/media"
	"semitone/internal/services"
)

// downloadView is the JSON shape emitted by download --json.
type downloadView struct {
	Description string           `json:"description"`
	OutputDir   string           `json:"outputDir"`
	File        *media.AudioFile `json:"file,omitempty"`
}

func newDownloadCommand(ctx *commandContext) *cobra.Command {
	var outputDir string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "download <url>",
		Short: "Download audio from an allowed media site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawURL := args[0]

			dir := outputDir
			if dir != "" {
				expanded, err := config.ExpandPath(dir)
				if err != nil {
					return fmt.Errorf("resolve output directory: %w", err)
				}
				dir = expanded
			}

			eng, err := ctx.ensureEngine()
			if err != nil {
				return err
			}

			opID := uuid.NewString()
			opCtx := services.WithOperationID(cmd.Context(), opID)
			result, err := eng.Download(opCtx, rawURL, dir)

			destination := ""
			if result.File != nil {
				destination = result.File.Path
			}
			ctx.journalOutcome(opID, history.KindDownload, rawURL, destination, err)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, downloadView{
					Description: result.Description,
					OutputDir:   result.OutputDir,
					File:        result.File,
				})
			}

			stdout := cmd.OutOrStdout()
			fmt.Fprintln(stdout, result.Description)
			if result.File != nil {
				for _, line := range describeAudioFile(*result.File) {
					fmt.Fprintln(stdout, line)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "dir", "d", "", "Directory to place the download (defaults to the configured output directory)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the download result as JSON")
	return cmd
}
