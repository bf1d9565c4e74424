package toolexec

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"semitone/internal/logging"
	"semitone/internal/services"
)

// Result holds the captured output streams of a completed process.
type Result struct {
	Stdout string
	Stderr string
}

// Runner abstracts external command execution for testability. Run blocks
// until the process finishes; callers that need concurrency run it from their
// own goroutine. Implementations must be safe for concurrent use.
type Runner interface {
	Run(ctx context.Context, binary string, args []string) (Result, error)
}

// ExitError reports a process that started successfully but exited nonzero.
// Stderr carries the tool's diagnostic text verbatim; callers surface it to
// the user rather than reformatting it.
type ExitError struct {
	Binary   string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	detail := strings.TrimSpace(e.Stderr)
	if detail == "" {
		return fmt.Sprintf("%s exited with status %d", e.Binary, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with status %d: %s", e.Binary, e.ExitCode, detail)
}

func (e *ExitError) Unwrap() error {
	return services.ErrToolFailure
}

// Option configures a CommandRunner.
type Option func(*CommandRunner)

// WithLogger attaches a logger used for invocation and output tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(r *CommandRunner) {
		if logger != nil {
			r.logger = logging.NewComponentLogger(logger, "toolexec")
		}
	}
}

// WithWaitDelay overrides the grace period between killing a context-canceled
// child and abandoning its pipes.
func WithWaitDelay(delay time.Duration) Option {
	return func(r *CommandRunner) {
		if delay > 0 {
			r.waitDelay = delay
		}
	}
}

// CommandRunner executes external binaries with full output capture. The
// child is started through exec.CommandContext, so context cancellation or
// deadline expiry kills the process rather than leaking it.
type CommandRunner struct {
	logger    *slog.Logger
	waitDelay time.Duration
}

// NewCommandRunner constructs a runner with the supplied options.
func NewCommandRunner(opts ...Option) *CommandRunner {
	runner := &CommandRunner{
		logger:    logging.NewNop(),
		waitDelay: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(runner)
	}
	return runner
}

// Run executes binary with args and waits for completion. Failures are
// classified: start errors wrap services.ErrSpawnFailed, context expiry wraps
// services.ErrTimeout, and nonzero exits surface as *ExitError. The runner
// never inspects argument semantics.
func (r *CommandRunner) Run(ctx context.Context, binary string, args []string) (Result, error) {
	name := filepath.Base(binary)
	if strings.TrimSpace(binary) == "" {
		return Result{}, services.Wrap(services.ErrSpawnFailed, "toolexec", "run", "binary path is empty", nil)
	}

	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.WaitDelay = r.waitDelay

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{}, services.Wrap(services.ErrSpawnFailed, "toolexec", name, "stdout pipe", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Result{}, services.Wrap(services.ErrSpawnFailed, "toolexec", name, "stderr pipe", err)
	}

	started := time.Now()
	r.logger.Debug("running command",
		logging.String("binary", binary),
		logging.String("args", strings.Join(args, " ")))

	if err := cmd.Start(); err != nil {
		return Result{}, services.Wrap(services.ErrSpawnFailed, "toolexec", name, "start command", err)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(2)
	go r.drain(&wg, "stdout", io.TeeReader(stdout, &stdoutBuf))
	go r.drain(&wg, "stderr", io.TeeReader(stderr, &stderrBuf))
	wg.Wait()

	waitErr := cmd.Wait()
	elapsed := time.Since(started)
	result := Result{Stdout: stdoutBuf.String(), Stderr: stderrBuf.String()}

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return result, services.Wrap(services.ErrTimeout, "toolexec", name,
				fmt.Sprintf("killed after %s", elapsed.Round(time.Millisecond)), ctxErr)
		}
		return result, fmt.Errorf("%s: %w", name, ctxErr)
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			r.logger.Debug("command failed",
				logging.String("binary", binary),
				logging.Int("exit_code", exitErr.ExitCode()),
				logging.Duration("elapsed", elapsed))
			return result, &ExitError{
				Binary:   name,
				ExitCode: exitErr.ExitCode(),
				Stderr:   result.Stderr,
			}
		}
		return result, services.Wrap(services.ErrToolFailure, "toolexec", name, "wait command", waitErr)
	}

	r.logger.Debug("command finished",
		logging.String("binary", binary),
		logging.Duration("elapsed", elapsed))
	return result, nil
}

// drain consumes one stream line by line so output is traceable at debug
// level while the tee writer keeps the exact bytes for the caller.
func (r *CommandRunner) drain(wg *sync.WaitGroup, stream string, reader io.Reader) {
	defer wg.Done()
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(scanToolLines)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		r.logger.Debug("tool output", logging.String("stream", stream), logging.String("line", line))
	}
	if err := scanner.Err(); err != nil {
		// Keep consuming so the child never blocks on a full pipe.
		_, _ = io.Copy(io.Discard, reader)
	}
}

// scanToolLines splits on \n or bare \r so carriage-return progress output
// (common for transcoders) still produces trace lines.
func scanToolLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\r' && i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		if data[i] == '\r' && i+1 == len(data) && !atEOF {
			// Wait for the next byte to decide whether this is \r\n.
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
