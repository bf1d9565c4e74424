package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"semitone/internal/services"
)

// Resolver locates bundled tool executables inside a single directory.
// Lookups never fall back to $PATH: shipping the tools next to the
// application is the contract, so a missing bundled binary is always an
// error rather than silently resolved elsewhere.
type Resolver struct {
	dir string
}

// NewResolver returns a Resolver rooted at dir. An empty dir resolves to the
// directory containing the running executable.
func NewResolver(dir string) (*Resolver, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		executableDir, err := ExecutableDir()
		if err != nil {
			return nil, err
		}
		dir = executableDir
	}
	absolute, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve bundle directory %q: %w", dir, err)
	}
	return &Resolver{dir: absolute}, nil
}

// ExecutableDir returns the directory holding the currently running
// executable, with symlinks resolved.
func ExecutableDir() (string, error) {
	executable, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(executable); err == nil {
		executable = resolved
	}
	return filepath.Dir(executable), nil
}

// Dir returns the bundle directory.
func (r *Resolver) Dir() string {
	return r.dir
}

// Resolve returns the absolute path of the named tool inside the bundle
// directory, appending the platform executable suffix. No process is spawned.
func (r *Resolver) Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", services.Wrap(services.ErrBinaryNotFound, "bundle", "resolve", "tool name is empty", nil)
	}
	candidate := filepath.Join(r.dir, executableName(name))
	info, err := os.Stat(candidate)
	if err != nil {
		return "", services.Wrap(services.ErrBinaryNotFound, "bundle", "resolve", fmt.Sprintf("%s not found at %s", name, candidate), err)
	}
	if info.IsDir() {
		return "", services.Wrap(services.ErrBinaryNotFound, "bundle", "resolve", fmt.Sprintf("%s is a directory", candidate), nil)
	}
	if !isExecutable(info) {
		return "", services.Wrap(services.ErrBinaryNotFound, "bundle", "resolve", fmt.Sprintf("%s is not executable", candidate), nil)
	}
	return candidate, nil
}

// Available reports whether the named tool resolves inside the bundle.
func (r *Resolver) Available(name string) bool {
	_, err := r.Resolve(name)
	return err == nil
}

func executableName(name string) string {
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(name), ".exe") {
		return name + ".exe"
	}
	return name
}

func isExecutable(info os.FileInfo) bool {
	if info == nil {
		return false
	}
	if info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
