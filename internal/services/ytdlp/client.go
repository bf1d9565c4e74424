package ytdlp

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"semitone/internal/toolexec"
)

// outputTemplate names downloaded files after the remote title, letting the
// downloader pick the extension of the extracted audio stream.
const outputTemplate = "%(title)s.%(ext)s"

// Option configures the client.
type Option func(*Client)

// WithRunner injects a custom process runner (primarily for tests).
func WithRunner(runner toolexec.Runner) Option {
	return func(c *Client) {
		if runner != nil {
			c.runner = runner
		}
	}
}

// Client wraps downloader CLI interactions.
type Client struct {
	binary       string
	audioQuality string
	runner       toolexec.Runner
}

// New constructs a yt-dlp client. audioQuality is the tool's 0 (best) to
// 10 (worst) scale; blank falls back to best.
func New(binary, audioQuality string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("downloader binary required")
	}
	audioQuality = strings.TrimSpace(audioQuality)
	if audioQuality == "" {
		audioQuality = "0"
	}
	client := &Client{
		binary:       binary,
		audioQuality: audioQuality,
		runner:       toolexec.NewCommandRunner(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// FetchAudio downloads the audio stream of url into outputDir and returns
// the captured process output. The invocation asks the tool to print the
// final on-disk path after any post-processing moves, so callers can
// recover it from the last stdout line. Runner errors pass through
// unchanged.
func (c *Client) FetchAudio(ctx context.Context, url, outputDir string) (toolexec.Result, error) {
	if strings.TrimSpace(url) == "" {
		return toolexec.Result{}, errors.New("url required")
	}
	if strings.TrimSpace(outputDir) == "" {
		return toolexec.Result{}, errors.New("output directory required")
	}
	args := []string{
		"-x",
		"--audio-quality", c.audioQuality,
		"-o", filepath.Join(outputDir, outputTemplate),
		"--no-simulate",
		"--print", "after_move:filepath",
		url,
	}
	return c.runner.Run(ctx, c.binary, args)
}
