package probe

import (
	"context"

	"log/slog"

	"semitone/internal/bundle"
	"semitone/internal/config"
	"semitone/internal/logging"
	"semitone/internal/media"
	"semitone/internal/media/ffprobe"
	"semitone/internal/toolexec"
)

// Prober builds AudioFile descriptors with best-effort duration metadata.
type Prober struct {
	cfg      *config.Config
	logger   *slog.Logger
	resolver *bundle.Resolver
	runner   toolexec.Runner
}

// NewProber constructs the probe orchestrator using default dependencies.
func NewProber(cfg *config.Config, logger *slog.Logger) *Prober {
	resolver, err := bundle.NewResolver(cfg.Paths.BundleDir)
	if err != nil {
		logger.Warn("bundle resolver unavailable", logging.Error(err))
	}
	runner := toolexec.NewCommandRunner(toolexec.WithLogger(logger))
	return NewProberWithDependencies(cfg, logger, resolver, runner)
}

// NewProberWithDependencies allows injecting all collaborators (used in tests).
func NewProberWithDependencies(cfg *config.Config, logger *slog.Logger, resolver *bundle.Resolver, runner toolexec.Runner) *Prober {
	return &Prober{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "probe"),
		resolver: resolver,
		runner:   runner,
	}
}

// Describe returns the descriptor for path. A missing file is an error;
// everything past the stat is enrichment, so a failed or unavailable
// duration probe degrades to Duration == nil rather than failing the call.
func (p *Prober) Describe(ctx context.Context, path string) (media.AudioFile, error) {
	logger := logging.WithContext(ctx, p.logger)

	file, err := media.Describe(path)
	if err != nil {
		return media.AudioFile{}, err
	}

	if p.resolver == nil {
		logger.Debug("skipping duration probe", logging.String("reason", "bundle resolver unavailable"))
		return file, nil
	}
	binary, err := p.resolver.Resolve(p.cfg.Tools.Prober)
	if err != nil {
		logger.Debug("skipping duration probe", logging.Error(err))
		return file, nil
	}

	probeCtx := ctx
	if timeout := p.cfg.ProbeTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	seconds, err := ffprobe.Duration(probeCtx, p.runner, binary, path)
	if err != nil {
		logger.Warn("duration probe failed", logging.String("path", path), logging.Error(err))
		return file, nil
	}
	logger.Debug("duration probed",
		logging.String("path", path),
		logging.Float64("duration_seconds", seconds))
	return file.WithDuration(seconds), nil
}
