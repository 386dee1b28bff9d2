// Package compose drives the container runtime for a materialized
// service directory: compose up/down via the docker CLI and container
// status via the Engine API.
package compose

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ManifestFilenames are the compose file names the runtime recognizes,
// in lookup order.
var ManifestFilenames = []string{
	"docker-compose.yml",
	"docker-compose.yaml",
	"compose.yml",
	"compose.yaml",
}

// runCommand is a factory variable so tests can intercept subprocess
// invocations.
var runCommand = func(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// FindManifest returns the path of the first recognized compose file in
// dir, or an error naming the directory when none exists.
func FindManifest(dir string) (string, error) {
	for _, name := range ManifestFilenames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("no compose manifest in %s", dir)
}

// Up starts the service defined in dir (docker compose up -d). The
// directory must already hold a recognized manifest file.
func Up(ctx context.Context, dir string) error {
	if _, err := FindManifest(dir); err != nil {
		return err
	}
	if out, err := runCommand(ctx, dir, "docker", "compose", "up", "-d"); err != nil {
		return fmt.Errorf("compose up in %s: %w: %s", dir, err, out)
	}
	return nil
}

// Down stops the service defined in dir.
func Down(ctx context.Context, dir string) error {
	if _, err := FindManifest(dir); err != nil {
		return err
	}
	if out, err := runCommand(ctx, dir, "docker", "compose", "down"); err != nil {
		return fmt.Errorf("compose down in %s: %w: %s", dir, err, out)
	}
	return nil
}
