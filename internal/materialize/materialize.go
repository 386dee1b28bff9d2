// Package materialize validates a manifest, prepares its host
// directories, and persists it to the canonical on-disk location.
package materialize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sage-selfhost/sage/internal/manifest"
)

// userHomeDir is a factory variable so tests can redirect home expansion.
var userHomeDir = os.UserHomeDir

// ExpandHome resolves a leading ~ to the invoking user's home directory.
// Paths without the prefix are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// DirResult reports what EnsureDirectories did. Warnings carry per-entry
// conditions that did not stop the run (a path that exists but is not a
// directory, a permission failure on one entry).
type DirResult struct {
	Created  []string
	Warnings []string
}

// EnsureDirectories parses the manifest and creates every missing host
// directory referenced by a path-like mount, ancestors included. Failures
// on individual entries are recorded as warnings; only an unparseable
// manifest fails the whole operation.
func EnsureDirectories(text string) (*DirResult, error) {
	m, err := manifest.Parse(text)
	if err != nil {
		return nil, err
	}

	result := &DirResult{}
	seen := make(map[string]bool)

	for _, svc := range m.Services() {
		for _, mnt := range svc.Mounts() {
			if !mnt.PathLike() {
				continue
			}
			path, err := ExpandHome(mnt.Host)
			if err != nil {
				return nil, err
			}
			if seen[path] {
				continue
			}
			seen[path] = true

			info, err := os.Stat(path)
			switch {
			case err == nil && info.IsDir():
				continue
			case err == nil:
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s exists but is not a directory", path))
				continue
			}

			if err := os.MkdirAll(path, 0o755); err != nil {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("create %s: %v", path, err))
				continue
			}
			result.Created = append(result.Created, path)
		}
	}

	return result, nil
}

// Persist writes the manifest text verbatim to
// <configRoot>/<serviceID>/<filename>, creating the directory if absent.
// It returns the resolved path of the written file.
func Persist(text, configRoot, serviceID, filename string) (string, error) {
	root, err := ExpandHome(configRoot)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, serviceID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create service directory: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}
