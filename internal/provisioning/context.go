package provisioning

import (
	"context"

	"github.com/sage-selfhost/sage/internal/config"
	"github.com/sage-selfhost/sage/internal/platform/cloudflare"
)

// State holds the shared results of provisioning stages.
// It is progressively populated as each stage completes and is passed
// to subsequent stages that need earlier results.
type State struct {
	// Source results (populated by fetch/extract stages)
	Input   string // Service name or docs URL as given on the command line
	DocsURL string // Resolved documentation URL
	Page    string // Raw documentation page body

	// Manifest results (populated by extract/rewrite stages)
	RawManifest string // Manifest as extracted from the page
	Manifest    string // Manifest with rewritten volume mounts
	Service     string // Normalized service identifier

	// Filesystem results (populated by directory/persist stages)
	CreatedDirs  []string // Host directories created for bind mounts
	DirWarnings  []string // Non-fatal directory creation failures
	ManifestPath string   // Where the manifest was written

	// Proxy results (populated by proxy stages)
	ProxyConfig string // Generated nginx server block
	SitePath    string // Path under sites-available
	LinkCreated bool   // Whether the sites-enabled symlink was new

	// DNS results (populated by the dns stage)
	ZoneID        string
	Record        *cloudflare.Record
	RecordCreated bool
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}

// Context wraps all dependencies and state needed for a provisioning stage.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Docs     DocumentSource
	Proxy    ProxyGenerator
	Sites    SiteManager
	Certs    CertificateIssuer
	DNS      DNSProvider
	Observer Observer
	Timeouts *config.Timeouts
}

// NewContext creates a new provisioning context.
func NewContext(ctx context.Context, cfg *config.Config) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Observer: NewConsoleObserver(),
		Timeouts: config.LoadTimeouts(),
	}
}
