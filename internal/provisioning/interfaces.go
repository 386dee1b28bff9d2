package provisioning

import (
	"context"

	"github.com/sage-selfhost/sage/internal/platform/cloudflare"
)

// Stage defines the interface for a provisioning stage.
type Stage interface {
	// Name returns the human-readable name of this stage.
	Name() string

	// Run executes the stage against the shared context. The returned
	// detail string is recorded in the workflow report on success.
	Run(ctx *Context) (string, error)
}

// DocumentSource resolves and fetches service documentation pages.
// Implemented by internal/platform/docs.Fetcher.
type DocumentSource interface {
	// BuildURL resolves a service name or full URL to a documentation URL.
	BuildURL(input string) string

	// Fetch retrieves the page body at url.
	Fetch(ctx context.Context, url string) (string, error)
}

// ProxyGenerator produces reverse proxy configuration for a service.
// Implemented by internal/platform/anthropic.Client.
type ProxyGenerator interface {
	GenerateProxyConfig(ctx context.Context, service, domain string) (string, error)
}

// SiteManager installs, enables, and reloads proxy site configuration.
// Implemented by internal/platform/nginx.Manager.
type SiteManager interface {
	// Install writes the site configuration and returns its path.
	Install(site, content string) (string, error)

	// Enable links the site into the enabled set. Returns true when the
	// link was newly created.
	Enable(site string) (bool, error)

	// TestConfig validates the full proxy configuration.
	TestConfig(ctx context.Context) error

	// Reload applies the configuration to the running proxy.
	Reload(ctx context.Context) error
}

// CertificateIssuer obtains TLS certificates for a domain.
// Implemented by internal/platform/certbot.Issuer.
type CertificateIssuer interface {
	Issue(ctx context.Context, domain string) error
}

// DNSProvider manages public DNS records for the configured domain.
// Implemented by internal/platform/cloudflare.Client.
type DNSProvider interface {
	// GetZoneID resolves the zone covering domain.
	GetZoneID(ctx context.Context, domain string) (string, error)

	// EnsureRecord updates the A record for name to point at ip, creating
	// it when absent. Returns the resulting record and whether it was created.
	EnsureRecord(ctx context.Context, zoneID, name, ip string) (*cloudflare.Record, bool, error)
}
