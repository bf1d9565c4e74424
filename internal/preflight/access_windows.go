//go:build windows

package preflight

import (
	"os"
	"path/filepath"
)

// Windows has no faccessat equivalent worth the syscall plumbing, so probe
// writability by creating and removing a marker file.
func dirAccess(path string) error {
	probe, err := os.CreateTemp(path, ".preflight-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	if err := probe.Close(); err != nil {
		return err
	}
	return os.Remove(filepath.Clean(name))
}
