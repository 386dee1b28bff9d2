// Package config defines the configuration model shared by every
// provisioning subsystem.
//
// A [Config] is built once at process start from the sage.yaml file plus
// environment overrides and passed explicitly into the workflow; nothing
// reads credentials ad hoc mid-pipeline.
package config

import "fmt"

// DefaultFile is the configuration filename looked up in the working
// directory when no --config flag is given.
const DefaultFile = "sage.yaml"

// Defaults applied by LoadFile when the file leaves a field empty.
const (
	DefaultDocsBaseURL      = "https://docs.linuxserver.io/images"
	DefaultDockerRoot       = "~/Docker"
	DefaultManifestFilename = "docker-compose.yml"
	DefaultSitesAvailable   = "/etc/nginx/sites-available"
	DefaultSitesEnabled     = "/etc/nginx/sites-enabled"
	DefaultModel            = "claude-sonnet-4-20250514"
	DefaultMaxTokens        = 2000
)

// Config holds the application configuration.
type Config struct {
	// Domain is the apex domain services are exposed under; a provisioned
	// service becomes <service>.<domain>.
	Domain string `mapstructure:"domain" yaml:"domain"`

	// PublicIP is the address DNS records point at.
	PublicIP string `mapstructure:"public_ip" yaml:"public_ip"`

	// DocsBaseURL is the documentation site manifests are fetched from.
	DocsBaseURL string `mapstructure:"docs_base_url" yaml:"docs_base_url"`

	// DockerRoot is the canonical root for rewritten mounts and
	// persisted manifests, ~-relative.
	DockerRoot string `mapstructure:"docker_root" yaml:"docker_root"`

	// ManifestFilename is the name the materialized manifest is saved
	// under inside the service directory.
	ManifestFilename string `mapstructure:"manifest_filename" yaml:"manifest_filename"`

	Nginx      NginxConfig      `mapstructure:"nginx" yaml:"nginx"`
	Anthropic  AnthropicConfig  `mapstructure:"anthropic" yaml:"anthropic"`
	Cloudflare CloudflareConfig `mapstructure:"cloudflare" yaml:"cloudflare"`
}

// NginxConfig locates the reverse proxy's configuration directories.
type NginxConfig struct {
	SitesAvailable string `mapstructure:"sites_available" yaml:"sites_available"`
	SitesEnabled   string `mapstructure:"sites_enabled" yaml:"sites_enabled"`
}

// AnthropicConfig configures the proxy-config generation endpoint.
// The API key is taken from ANTHROPIC_API_KEY, never from the file.
type AnthropicConfig struct {
	APIKey    string `mapstructure:"-" yaml:"-"`
	Model     string `mapstructure:"model" yaml:"model"`
	MaxTokens int    `mapstructure:"max_tokens" yaml:"max_tokens"`
}

// CloudflareConfig configures the DNS provider. The token is taken from
// CLOUDFLARE_API_TOKEN, never from the file.
type CloudflareConfig struct {
	APIToken string `mapstructure:"-" yaml:"-"`
}

// ConfigurationError reports a missing or invalid configuration value.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Field, e.Reason)
}

// Validate checks that every field the full workflow needs is present.
// Commands that only extract manifests get by with the defaults, so they
// call ValidateExtract instead.
func (c *Config) Validate() error {
	if err := c.ValidateExtract(); err != nil {
		return err
	}
	if c.Domain == "" {
		return &ConfigurationError{Field: "domain", Reason: "required for provisioning"}
	}
	if c.PublicIP == "" {
		return &ConfigurationError{Field: "public_ip", Reason: "required for DNS records"}
	}
	if c.Anthropic.APIKey == "" {
		return &ConfigurationError{Field: "ANTHROPIC_API_KEY", Reason: "environment variable not set"}
	}
	if c.Cloudflare.APIToken == "" {
		return &ConfigurationError{Field: "CLOUDFLARE_API_TOKEN", Reason: "environment variable not set"}
	}
	return nil
}

// ValidateExtract checks only the fields the fetch/extract path uses.
func (c *Config) ValidateExtract() error {
	if c.DocsBaseURL == "" {
		return &ConfigurationError{Field: "docs_base_url", Reason: "must not be empty"}
	}
	if c.DockerRoot == "" {
		return &ConfigurationError{Field: "docker_root", Reason: "must not be empty"}
	}
	return nil
}
