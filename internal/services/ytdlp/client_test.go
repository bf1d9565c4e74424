package ytdlp_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"semitone/internal/services"
	"semitone/internal/services/ytdlp"
	"semitone/internal/toolexec"
)

type stubRunner struct {
	result toolexec.Result
	err    error
	calls  int
	binary string
	args   [][]string
}

func (s *stubRunner) Run(ctx context.Context, binary string, args []string) (toolexec.Result, error) {
	s.calls++
	s.binary = binary
	s.args = append(s.args, append([]string(nil), args...))
	return s.result, s.err
}

func TestNewValidatesBinary(t *testing.T) {
	if _, err := ytdlp.New("  ", "0"); err == nil {
		t.Fatal("expected error for blank binary")
	}
}

func TestFetchAudioBuildsArguments(t *testing.T) {
	runner := &stubRunner{result: toolexec.Result{Stdout: "/dl/song.opus\n"}}
	client, err := ytdlp.New("/opt/tools/yt-dlp", "0", ytdlp.WithRunner(runner))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	result, err := client.FetchAudio(context.Background(), "https://youtube.com/watch?v=abc", "/dl")
	if err != nil {
		t.Fatalf("FetchAudio returned error: %v", err)
	}
	if result.Stdout != "/dl/song.opus\n" {
		t.Fatalf("expected stdout passthrough, got %q", result.Stdout)
	}
	if runner.binary != "/opt/tools/yt-dlp" {
		t.Fatalf("unexpected binary %q", runner.binary)
	}
	want := []string{
		"-x",
		"--audio-quality", "0",
		"-o", filepath.Join("/dl", "%(title)s.%(ext)s"),
		"--no-simulate",
		"--print", "after_move:filepath",
		"https://youtube.com/watch?v=abc",
	}
	got := runner.args[0]
	if len(got) != len(want) {
		t.Fatalf("unexpected args: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("arg %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestFetchAudioDefaultsQuality(t *testing.T) {
	runner := &stubRunner{}
	client, err := ytdlp.New("yt-dlp", "  ", ytdlp.WithRunner(runner))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.FetchAudio(context.Background(), "https://youtu.be/abc", t.TempDir()); err != nil {
		t.Fatalf("FetchAudio returned error: %v", err)
	}
	args := runner.args[0]
	for i, arg := range args {
		if arg == "--audio-quality" {
			if args[i+1] != "0" {
				t.Fatalf("expected default quality 0, got %q", args[i+1])
			}
			return
		}
	}
	t.Fatalf("expected --audio-quality in args %v", args)
}

func TestFetchAudioRequiresURLAndDir(t *testing.T) {
	runner := &stubRunner{}
	client, err := ytdlp.New("yt-dlp", "0", ytdlp.WithRunner(runner))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.FetchAudio(context.Background(), "", "/dl"); err == nil {
		t.Fatal("expected error for blank url")
	}
	if _, err := client.FetchAudio(context.Background(), "https://youtu.be/abc", " "); err == nil {
		t.Fatal("expected error for blank output dir")
	}
	if runner.calls != 0 {
		t.Fatalf("expected no spawns on validation failure, got %d", runner.calls)
	}
}

func TestFetchAudioPassesRunnerErrorThrough(t *testing.T) {
	toolErr := &toolexec.ExitError{Binary: "yt-dlp", ExitCode: 1, Stderr: "ERROR: unable to download"}
	runner := &stubRunner{err: toolErr}
	client, err := ytdlp.New("yt-dlp", "0", ytdlp.WithRunner(runner))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.FetchAudio(context.Background(), "https://youtu.be/abc", "/dl"); !errors.Is(err, services.ErrToolFailure) {
		t.Fatalf("expected ErrToolFailure, got %v", err)
	}
}
