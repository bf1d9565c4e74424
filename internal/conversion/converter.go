package conversion

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"log/slog"

	"semitone/internal/bundle"
	"semitone/internal/config"
	"semitone/internal/logging"
	"semitone/internal/media"
	"semitone/internal/pitch"
	"semitone/internal/services"
	"semitone/internal/services/ffmpeg"
	"semitone/internal/toolexec"
)

// Result summarizes a completed conversion.
type Result struct {
	Description string
	Source      media.AudioFile
	OutputPath  string
	Shift       pitch.Shift
}

// Converter validates conversion requests and drives the transcoder.
type Converter struct {
	cfg      *config.Config
	logger   *slog.Logger
	resolver *bundle.Resolver
	runner   toolexec.Runner
}

// NewConverter constructs the conversion orchestrator using default
// dependencies. The resolver error is deferred to the first Convert call so
// construction never fails; spawning is where a broken bundle matters.
func NewConverter(cfg *config.Config, logger *slog.Logger) *Converter {
	resolver, err := bundle.NewResolver(cfg.Paths.BundleDir)
	if err != nil {
		logger.Warn("bundle resolver unavailable", logging.Error(err))
	}
	runner := toolexec.NewCommandRunner(toolexec.WithLogger(logger))
	return NewConverterWithDependencies(cfg, logger, resolver, runner)
}

// NewConverterWithDependencies allows injecting all collaborators (used in tests).
func NewConverterWithDependencies(cfg *config.Config, logger *slog.Logger, resolver *bundle.Resolver, runner toolexec.Runner) *Converter {
	return &Converter{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "conversion"),
		resolver: resolver,
		runner:   runner,
	}
}

// Convert transcodes the file at path according to options. Validation
// failures surface before any process is spawned. The destination is
// overwritten when present; a partially written destination may remain
// after a failed run, matching the transcoder's own behavior.
func (c *Converter) Convert(ctx context.Context, path string, options media.ConversionOptions) (Result, error) {
	logger := logging.WithContext(ctx, c.logger)

	source, err := media.Describe(path)
	if err != nil {
		return Result{}, err
	}
	if !media.SupportedPath(path) {
		return Result{}, services.Wrap(services.ErrUnsupportedFormat, "conversion", "validate",
			fmt.Sprintf("%s is not one of %s", filepath.Ext(path), strings.Join(media.SupportedExtensions(), ", ")), nil)
	}

	outputPath := strings.TrimSpace(options.OutputPath)
	if outputPath == "" {
		return Result{}, services.Wrap(services.ErrConfiguration, "conversion", "validate", "output path required", nil)
	}
	format := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(options.OutputFormat), "."))
	if format == "" {
		format = strings.ToLower(strings.TrimPrefix(filepath.Ext(outputPath), "."))
	}
	if format == "" {
		return Result{}, services.Wrap(services.ErrConfiguration, "conversion", "validate", "output format required", nil)
	}

	if c.resolver == nil {
		return Result{}, services.Wrap(services.ErrBinaryNotFound, "conversion", "resolve", "bundle resolver unavailable", nil)
	}
	binary, err := c.resolver.Resolve(c.cfg.Tools.Transcoder)
	if err != nil {
		return Result{}, err
	}

	shift := pitch.NewShift(options.Semitones)
	client, err := ffmpeg.New(binary, c.cfg.Conversion.SampleRate, ffmpeg.WithRunner(c.runner))
	if err != nil {
		return Result{}, services.Wrap(services.ErrConfiguration, "conversion", "build client", "invalid transcoder settings", err)
	}

	logger.Info("starting conversion",
		logging.String("source", source.Name),
		logging.Int("semitones", shift.Semitones),
		logging.Float64("rate_multiplier", shift.Multiplier()),
		logging.String("output_format", format),
		logging.String("output_path", outputPath))

	runCtx := ctx
	if timeout := c.cfg.ConvertTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := client.Convert(runCtx, path, outputPath, format, shift); err != nil {
		logger.Error("conversion failed", logging.Error(err))
		return Result{}, err
	}

	result := Result{
		Description: fmt.Sprintf("Converted %s (%s) to %s", source.Name, shift.Description(), outputPath),
		Source:      source,
		OutputPath:  outputPath,
		Shift:       shift,
	}
	logger.Info("conversion completed",
		logging.String("source", source.Name),
		logging.String("output_path", outputPath))
	return result, nil
}
