package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"semitone/internal/config"
	"semitone/internal/history"
	"semitone/internal/media"
	"semitone/internal/services"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var semitones int
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert an audio file with an optional pitch shift",
		Long: "Convert an audio file to the requested format, shifting its pitch by the\n" +
			"given number of semitones. Without --output the result is written next to\n" +
			"the source as <name>_shifted.<format>.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve input path: %w", err)
			}

			outputPath, err := resolveConvertOutput(inputPath, output, format)
			if err != nil {
				return err
			}

			eng, err := ctx.ensureEngine()
			if err != nil {
				return err
			}

			opID := uuid.NewString()
			opCtx := services.WithOperationID(cmd.Context(), opID)
			result, err := eng.Convert(opCtx, inputPath, media.ConversionOptions{
				Semitones:    semitones,
				OutputFormat: format,
				OutputPath:   outputPath,
			})
			ctx.journalOutcome(opID, history.KindConvert, inputPath, outputPath, err)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Description)
			return nil
		},
	}

	cmd.Flags().IntVarP(&semitones, "semitones", "s", 0, "Semitones to shift (negative shifts down)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (mp3, wav, flac, m4a, aac, ogg)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path")
	return cmd
}

// resolveConvertOutput determines the destination path. An explicit --output
// wins; otherwise the file lands next to the source with a _shifted suffix and
// the requested format's extension.
func resolveConvertOutput(inputPath, output, format string) (string, error) {
	if strings.TrimSpace(output) != "" {
		expanded, err := config.ExpandPath(output)
		if err != nil {
			return "", fmt.Errorf("resolve output path: %w", err)
		}
		return expanded, nil
	}

	ext := strings.TrimPrefix(filepath.Ext(inputPath), ".")
	if trimmed := strings.TrimSpace(format); trimmed != "" {
		ext = strings.TrimPrefix(strings.ToLower(trimmed), ".")
	}
	if ext == "" {
		return "", fmt.Errorf("cannot derive an output name for %s; pass --output or --format", inputPath)
	}
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(filepath.Dir(inputPath), stem+"_shifted."+ext), nil
}
