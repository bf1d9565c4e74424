package engine

import (
	"context"
	"errors"

	"log/slog"

	"semitone/internal/bundle"
	"semitone/internal/config"
	"semitone/internal/conversion"
	"semitone/internal/download"
	"semitone/internal/logging"
	"semitone/internal/media"
	"semitone/internal/preflight"
	"semitone/internal/probe"
	"semitone/internal/services"
	"semitone/internal/toolexec"
)

// Option overrides a default collaborator, primarily for tests that point
// the engine at fixture bundles or fake process runners.
type Option func(*settings)

type settings struct {
	resolver *bundle.Resolver
	runner   toolexec.Runner
}

// WithResolver substitutes the bundle resolver.
func WithResolver(resolver *bundle.Resolver) Option {
	return func(s *settings) {
		if resolver != nil {
			s.resolver = resolver
		}
	}
}

// WithRunner substitutes the process runner shared by all operations.
func WithRunner(runner toolexec.Runner) Option {
	return func(s *settings) {
		if runner != nil {
			s.runner = runner
		}
	}
}

// Engine is the core interface exposed to presentation layers. Operations
// are independent and stateless between calls; the engine holds no mutable
// state, so concurrent calls need no coordination here. Two concurrent
// conversions targeting the same output path race by contract, last writer
// wins.
type Engine struct {
	cfg        *config.Config
	logger     *slog.Logger
	resolver   *bundle.Resolver
	converter  *conversion.Converter
	downloader *download.Downloader
	prober     *probe.Prober
}

// New wires an Engine from configuration. The bundle directory must
// resolve at construction time; individual tools inside it are checked per
// operation so a missing downloader does not block conversions.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	resolver := s.resolver
	if resolver == nil {
		built, err := bundle.NewResolver(cfg.Paths.BundleDir)
		if err != nil {
			return nil, err
		}
		resolver = built
	}
	runner := s.runner
	if runner == nil {
		runner = toolexec.NewCommandRunner(toolexec.WithLogger(logger))
	}
	return &Engine{
		cfg:        cfg,
		logger:     logging.NewComponentLogger(logger, "engine"),
		resolver:   resolver,
		converter:  conversion.NewConverterWithDependencies(cfg, logger, resolver, runner),
		downloader: download.NewDownloaderWithDependencies(cfg, logger, resolver, runner),
		prober:     probe.NewProberWithDependencies(cfg, logger, resolver, runner),
	}, nil
}

// Convert transcodes path according to options.
func (e *Engine) Convert(ctx context.Context, path string, options media.ConversionOptions) (conversion.Result, error) {
	return e.converter.Convert(services.WithOperationKind(ctx, "convert"), path, options)
}

// Probe describes the file at path with best-effort duration metadata.
func (e *Engine) Probe(ctx context.Context, path string) (media.AudioFile, error) {
	return e.prober.Describe(services.WithOperationKind(ctx, "probe"), path)
}

// Download fetches the audio stream of rawURL into outputDir.
func (e *Engine) Download(ctx context.Context, rawURL, outputDir string) (download.Result, error) {
	return e.downloader.Download(services.WithOperationKind(ctx, "download"), rawURL, outputDir)
}

// Capabilities reports the platform and bundled tool availability.
func (e *Engine) Capabilities() preflight.Capabilities {
	return preflight.Inspect(e.cfg, e.resolver)
}
