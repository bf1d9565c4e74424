package download

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"log/slog"

	"semitone/internal/bundle"
	"semitone/internal/config"
	"semitone/internal/logging"
	"semitone/internal/media"
	"semitone/internal/probe"
	"semitone/internal/services"
	"semitone/internal/services/ytdlp"
	"semitone/internal/toolexec"
)

// Result summarizes a completed download. File is nil when the downloader
// exited zero but no stdout line resolved to an existing path; that case is
// still a success because the tool's exit status is trusted over local path
// verification.
type Result struct {
	Description string
	File        *media.AudioFile
	OutputDir   string
}

// Downloader validates download requests and drives the downloader tool.
type Downloader struct {
	cfg      *config.Config
	logger   *slog.Logger
	resolver *bundle.Resolver
	runner   toolexec.Runner
	prober   *probe.Prober
}

// NewDownloader constructs the download orchestrator using default dependencies.
func NewDownloader(cfg *config.Config, logger *slog.Logger) *Downloader {
	resolver, err := bundle.NewResolver(cfg.Paths.BundleDir)
	if err != nil {
		logger.Warn("bundle resolver unavailable", logging.Error(err))
	}
	runner := toolexec.NewCommandRunner(toolexec.WithLogger(logger))
	return NewDownloaderWithDependencies(cfg, logger, resolver, runner)
}

// NewDownloaderWithDependencies allows injecting all collaborators (used in tests).
func NewDownloaderWithDependencies(cfg *config.Config, logger *slog.Logger, resolver *bundle.Resolver, runner toolexec.Runner) *Downloader {
	return &Downloader{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "download"),
		resolver: resolver,
		runner:   runner,
		prober:   probe.NewProberWithDependencies(cfg, logger, resolver, runner),
	}
}

// Download fetches the audio stream of rawURL into outputDir. The URL must
// match the configured domain allowlist before any process spawns. An empty
// outputDir falls back to the configured download directory.
func (d *Downloader) Download(ctx context.Context, rawURL, outputDir string) (Result, error) {
	logger := logging.WithContext(ctx, d.logger)

	rawURL = strings.TrimSpace(rawURL)
	if err := d.validateURL(rawURL); err != nil {
		return Result{}, err
	}
	outputDir = strings.TrimSpace(outputDir)
	if outputDir == "" {
		outputDir = d.cfg.Download.OutputDir
	}
	if outputDir == "" {
		return Result{}, services.Wrap(services.ErrConfiguration, "download", "validate", "output directory required", nil)
	}

	if d.resolver == nil {
		return Result{}, services.Wrap(services.ErrBinaryNotFound, "download", "resolve", "bundle resolver unavailable", nil)
	}
	binary, err := d.resolver.Resolve(d.cfg.Tools.Downloader)
	if err != nil {
		return Result{}, err
	}
	client, err := ytdlp.New(binary, d.cfg.Download.AudioQuality, ytdlp.WithRunner(d.runner))
	if err != nil {
		return Result{}, services.Wrap(services.ErrConfiguration, "download", "build client", "invalid downloader settings", err)
	}

	logger.Info("starting download",
		logging.String("url", rawURL),
		logging.String("output_dir", outputDir))

	runCtx := ctx
	if timeout := d.cfg.DownloadTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	output, err := client.FetchAudio(runCtx, rawURL, outputDir)
	if err != nil {
		logger.Error("download failed", logging.Error(err))
		return Result{}, err
	}

	candidate := lastNonEmptyLine(output.Stdout)
	if candidate == "" || !fileExists(candidate) {
		logger.Warn("downloader reported success without a resolvable output path",
			logging.String("candidate", candidate))
		return Result{
			Description: "Download finished but no output file was identified",
			OutputDir:   outputDir,
		}, nil
	}

	result := Result{OutputDir: outputDir}
	file, err := d.prober.Describe(ctx, candidate)
	if err != nil {
		// Enrichment only; the download itself already succeeded.
		logger.Warn("downloaded file enrichment failed", logging.String("path", candidate), logging.Error(err))
		result.Description = fmt.Sprintf("Downloaded %s", candidate)
		logger.Info("download completed", logging.String("path", candidate))
		return result, nil
	}
	result.File = &file
	result.Description = fmt.Sprintf("Downloaded %s", file.Name)
	logger.Info("download completed",
		logging.String("path", candidate),
		logging.Int64("size_bytes", file.Size))
	return result, nil
}

// validateURL applies the coarse domain allowlist. It guarantees only that
// the host belongs to a recognized media site, not that the URL is playable.
func (d *Downloader) validateURL(rawURL string) error {
	if rawURL == "" {
		return services.Wrap(services.ErrInvalidURL, "download", "validate", "url is empty", nil)
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return services.Wrap(services.ErrInvalidURL, "download", "validate", fmt.Sprintf("cannot parse %q", rawURL), err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return services.Wrap(services.ErrInvalidURL, "download", "validate", fmt.Sprintf("unsupported scheme %q", parsed.Scheme), nil)
	}
	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if host == "" {
		return services.Wrap(services.ErrInvalidURL, "download", "validate", "url has no host", nil)
	}
	for _, domain := range d.cfg.Download.AllowedDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return nil
		}
	}
	return services.Wrap(services.ErrInvalidURL, "download", "validate",
		fmt.Sprintf("%s is not a recognized media site", host), nil)
}

func lastNonEmptyLine(stdout string) string {
	lines := strings.Split(stdout, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
