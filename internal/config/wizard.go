package config

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/charmbracelet/huh"
)

// RunWizard runs the interactive configuration wizard and returns the
// resulting config. Credentials are not asked for; they stay in the
// environment.
func RunWizard(ctx context.Context) (*Config, error) {
	cfg := &Config{}
	applyDefaults(cfg)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Domain").
				Description("Services are exposed as <service>.<domain>").
				Placeholder("example.com").
				Value(&cfg.Domain).
				Validate(validateDomain),

			huh.NewInput().
				Title("Public IP").
				Description("Address DNS records point at").
				Placeholder("203.0.113.10").
				Value(&cfg.PublicIP).
				Validate(validateIP),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Docker root").
				Description("Host directory that holds service data and manifests").
				Value(&cfg.DockerRoot).
				Validate(validateDockerRoot),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateDomain(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("domain is required")
	}
	if strings.Contains(s, "://") || !strings.Contains(s, ".") {
		return fmt.Errorf("enter a bare domain like example.com")
	}
	return nil
}

func validateIP(s string) error {
	if net.ParseIP(strings.TrimSpace(s)) == nil {
		return fmt.Errorf("not a valid IP address")
	}
	return nil
}

func validateDockerRoot(s string) error {
	if s == "" {
		return fmt.Errorf("docker root is required")
	}
	if !strings.HasPrefix(s, "~/") && !strings.HasPrefix(s, "/") {
		return fmt.Errorf("use an absolute or ~-relative path")
	}
	return nil
}
