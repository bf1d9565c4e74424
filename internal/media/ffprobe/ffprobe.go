package ffprobe

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"semitone/internal/services"
	"semitone/internal/toolexec"
)

// durationArgs asks ffprobe for the container duration alone, one plain
// number on stdout with no section wrappers or keys.
func durationArgs(path string) []string {
	return []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}
}

// Duration probes the audio duration of path in seconds using the prober
// binary. The probe runs through runner so callers control timeouts via ctx
// and tests can substitute a stub. Output that does not parse as a single
// float wraps services.ErrOutputParse; process failures keep the runner's
// classification.
func Duration(ctx context.Context, runner toolexec.Runner, binary, path string) (float64, error) {
	result, err := runner.Run(ctx, binary, durationArgs(path))
	if err != nil {
		return 0, err
	}
	raw := strings.TrimSpace(result.Stdout)
	seconds, parseErr := strconv.ParseFloat(raw, 64)
	if parseErr != nil {
		return 0, services.Wrap(services.ErrOutputParse, "ffprobe", "duration",
			fmt.Sprintf("unexpected output %q for %s", raw, path), parseErr)
	}
	if seconds < 0 {
		return 0, services.Wrap(services.ErrOutputParse, "ffprobe", "duration",
			fmt.Sprintf("negative duration %q for %s", raw, path), nil)
	}
	return seconds, nil
}
