package logging_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"semitone/internal/config"
	"semitone/internal/logging"
	"semitone/internal/services"
)

func TestNewFromConfigWritesToLogDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger instance")
	}
	logger.Info("startup", logging.String("version", "test"))

	data, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "semitone.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "startup") {
		t.Fatalf("expected log line in file, got %q", string(data))
	}
	if !strings.Contains(string(data), "version=test") {
		t.Fatalf("expected attr in log line, got %q", string(data))
	}
}

func TestConsoleHandlerFoldsComponentIntoPrefix(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "console.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	component := logging.NewComponentLogger(logger, "conversion")
	component.Info("transcode complete", logging.Int("semitones", 3))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "conversion: transcode complete") {
		t.Fatalf("expected component prefix, got %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component attr should be folded into prefix, got %q", line)
	}
	if !strings.Contains(line, "semitones=3") {
		t.Fatalf("expected attr rendering, got %q", line)
	}
	if !strings.Contains(line, " INFO ") {
		t.Fatalf("expected level label, got %q", line)
	}
}

func TestJSONHandlerUsesCanonicalKeys(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "json.log")

	logger, err := logging.New(logging.Options{
		Format:      "json",
		Level:       "debug",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("probe finished", logging.Float64("duration_seconds", 1.5))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(data)
	for _, fragment := range []string{`"ts":`, `"level":"debug"`, `"msg":"probe finished"`, `"duration_seconds":1.5`} {
		if !strings.Contains(line, fragment) {
			t.Fatalf("expected %s in %q", fragment, line)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLevelFiltering(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "filtered.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "warn",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Fatalf("info line should be filtered, got %q", string(data))
	}
	if !strings.Contains(string(data), "visible") {
		t.Fatalf("warn line should pass, got %q", string(data))
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("expected no-op logger to be disabled")
	}
	logger.Error("discarded", logging.Error(os.ErrNotExist))
}

func TestWithContextAttachesOperationFields(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "ctx.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := services.WithOperationID(context.Background(), "op-123")
	ctx = services.WithOperationKind(ctx, "convert")
	logging.WithContext(ctx, logger).Info("classified outcome")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "operation_id=op-123") {
		t.Fatalf("expected operation id attr, got %q", line)
	}
	if !strings.Contains(line, "operation=convert") {
		t.Fatalf("expected operation attr, got %q", line)
	}
}

func TestWithContextNilLoggerFallsBackToNop(t *testing.T) {
	logger := logging.WithContext(context.Background(), nil)
	if logger == nil {
		t.Fatal("expected logger instance")
	}
	logger.Info("discarded")
}
