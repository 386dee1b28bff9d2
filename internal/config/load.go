package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load builds the configuration from an optional YAML file plus the
// environment. An empty path means "use DefaultFile if it exists"; a
// missing default file is not an error, the zero config plus defaults and
// environment overrides is used instead. An explicitly named file must
// exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultFile
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var raw map[string]interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
		if err := mapstructure.Decode(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// fall through to defaults
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyDefaults(cfg)
	applyEnv(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.DocsBaseURL == "" {
		cfg.DocsBaseURL = DefaultDocsBaseURL
	}
	if cfg.DockerRoot == "" {
		cfg.DockerRoot = DefaultDockerRoot
	}
	if cfg.ManifestFilename == "" {
		cfg.ManifestFilename = DefaultManifestFilename
	}
	if cfg.Nginx.SitesAvailable == "" {
		cfg.Nginx.SitesAvailable = DefaultSitesAvailable
	}
	if cfg.Nginx.SitesEnabled == "" {
		cfg.Nginx.SitesEnabled = DefaultSitesEnabled
	}
	if cfg.Anthropic.Model == "" {
		cfg.Anthropic.Model = DefaultModel
	}
	if cfg.Anthropic.MaxTokens == 0 {
		cfg.Anthropic.MaxTokens = DefaultMaxTokens
	}
}

// applyEnv pulls credentials and overridable values from the environment.
// Credentials never live in the config file.
func applyEnv(cfg *Config) {
	cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	cfg.Cloudflare.APIToken = os.Getenv("CLOUDFLARE_API_TOKEN")

	if v := os.Getenv("SAGE_DOMAIN"); v != "" {
		cfg.Domain = v
	}
	if v := os.Getenv("SAGE_PUBLIC_IP"); v != "" {
		cfg.PublicIP = v
	}
	if v := os.Getenv("SAGE_DOCS_BASE_URL"); v != "" {
		cfg.DocsBaseURL = v
	}
}

// WriteFile renders the configuration to YAML at path. Credentials are
// excluded by their struct tags.
func WriteFile(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
