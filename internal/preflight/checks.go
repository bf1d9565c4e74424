package preflight

import (
	"fmt"
	"os"

	"semitone/internal/bundle"
	"semitone/internal/config"
	"semitone/internal/deps"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	if path == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := dirAccess(path); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckBundledTools evaluates the default bundled tool set for the given
// config. A bundle directory that fails to resolve marks every tool
// unavailable instead of failing the check run.
func CheckBundledTools(cfg *config.Config) []deps.Status {
	requirements := deps.Defaults(cfg)
	resolver, err := bundle.NewResolver(cfg.Paths.BundleDir)
	if err != nil {
		resolver = nil
	}
	return deps.CheckBinaries(resolver, requirements)
}
