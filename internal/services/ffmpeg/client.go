package ffmpeg

import (
	"context"
	"errors"
	"strings"

	"semitone/internal/pitch"
	"semitone/internal/services"
	"semitone/internal/toolexec"
)

// muxers maps supported container extensions to the muxer name ffmpeg
// expects after -f. The names differ from the extension for m4a and aac.
var muxers = map[string]string{
	"mp3":  "mp3",
	"wav":  "wav",
	"flac": "flac",
	"m4a":  "ipod",
	"aac":  "adts",
	"ogg":  "ogg",
}

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

// Client wraps transcoder CLI interactions.
type Client struct {
	binary     string
	sampleRate int
	runner     toolexec.Runner
}

// New constructs an ffmpeg client. The sample rate anchors the resample
// filter expressions built for each conversion.
func New(binary string, sampleRate int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("transcoder binary required")
	}
	if sampleRate <= 0 {
		return nil, errors.New("sample rate must be positive")
	}
	client := &Client{
		binary:     binary,
		sampleRate: sampleRate,
		runner:     toolexec.NewCommandRunner(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Convert transcodes inputPath into outputPath with the shift's resample
// filter applied, overwriting any existing destination file. The format
// names the target container; stream copy is never used because the filter
// always re-encodes. Runner errors pass through unchanged so callers keep
// the exit classification and verbatim stderr.
func (c *Client) Convert(ctx context.Context, inputPath, outputPath, format string, shift pitch.Shift) error {
	muxer, ok := muxerName(format)
	if !ok {
		return services.Wrap(services.ErrUnsupportedFormat, "ffmpeg", "convert",
			"no muxer for output format "+format, nil)
	}
	args := []string{
		"-y",
		"-i", inputPath,
		"-vn",
		"-filter:a", shift.Filter(c.sampleRate),
		"-f", muxer,
		outputPath,
	}
	if _, err := c.runner.Run(ctx, c.binary, args); err != nil {
		return err
	}
	return nil
}

func muxerName(format string) (string, bool) {
	normalized := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
	muxer, ok := muxers[normalized]
	return muxer, ok
}
