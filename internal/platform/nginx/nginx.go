// Package nginx manages reverse-proxy site configs the Debian way:
// a file in sites-available, a symlink in sites-enabled, and systemctl
// for reload/restart.
package nginx

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
)

// runCommand is a factory variable so tests can intercept subprocess
// invocations.
var runCommand = func(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Manager installs and enables site configurations.
type Manager struct {
	sitesAvailable string
	sitesEnabled   string
}

// NewManager creates a manager over the given config directories.
func NewManager(sitesAvailable, sitesEnabled string) *Manager {
	return &Manager{sitesAvailable: sitesAvailable, sitesEnabled: sitesEnabled}
}

// Install writes the site configuration into sites-available and returns
// the path written. Permission failures surface unchanged so callers can
// suggest running privileged.
func (m *Manager) Install(site, config string) (string, error) {
	path := filepath.Join(m.sitesAvailable, site)
	if err := os.WriteFile(path, []byte(config), 0o644); err != nil {
		return "", fmt.Errorf("install site config: %w", err)
	}
	return path, nil
}

// Enable symlinks the site into sites-enabled. Enabling an already
// enabled site is a no-op; the returned bool is true when a new link was
// created.
func (m *Manager) Enable(site string) (bool, error) {
	target := filepath.Join(m.sitesAvailable, site)
	link := filepath.Join(m.sitesEnabled, site)

	if _, err := os.Lstat(link); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("check enabled site: %w", err)
	}

	if err := os.Symlink(target, link); err != nil {
		return false, fmt.Errorf("enable site: %w", err)
	}
	return true, nil
}

// TestConfig validates the full nginx configuration (nginx -t).
func (m *Manager) TestConfig(ctx context.Context) error {
	if out, err := runCommand(ctx, "nginx", "-t"); err != nil {
		return fmt.Errorf("nginx config test failed: %w: %s", err, out)
	}
	return nil
}

// Reload asks the running nginx to pick up configuration changes.
func (m *Manager) Reload(ctx context.Context) error {
	if out, err := runCommand(ctx, "systemctl", "reload", "nginx"); err != nil {
		return fmt.Errorf("reload nginx: %w: %s", err, out)
	}
	return nil
}

// Restart fully restarts nginx.
func (m *Manager) Restart(ctx context.Context) error {
	if out, err := runCommand(ctx, "systemctl", "restart", "nginx"); err != nil {
		return fmt.Errorf("restart nginx: %w: %s", err, out)
	}
	return nil
}

// Status returns the service status output.
func (m *Manager) Status(ctx context.Context) (string, error) {
	out, err := runCommand(ctx, "systemctl", "status", "nginx", "--no-pager")
	if err != nil {
		return "", fmt.Errorf("nginx status: %w: %s", err, out)
	}
	return string(out), nil
}
