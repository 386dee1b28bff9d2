package provisioning

import (
	"fmt"

	"github.com/sage-selfhost/sage/internal/manifest"
	"github.com/sage-selfhost/sage/internal/materialize"
	"github.com/sage-selfhost/sage/internal/platform/cloudflare"
	"github.com/sage-selfhost/sage/internal/platform/docs"
	"github.com/sage-selfhost/sage/internal/util/naming"
	"github.com/sage-selfhost/sage/internal/util/retry"
)

// Stage names, in execution order.
const (
	StageFetch       = "fetch"
	StageExtract     = "extract"
	StageRewrite     = "rewrite"
	StageDirectories = "directories"
	StagePersist     = "persist"
	StageProxyConfig = "proxy-config"
	StageProxyEnable = "proxy-enable"
	StageCertificate = "certificate"
	StageProxyReload = "proxy-reload"
	StageDNS         = "dns"
)

// DefaultStages returns the full provisioning sequence for a service.
func DefaultStages() []Stage {
	return []Stage{
		fetchStage{},
		extractStage{},
		rewriteStage{},
		directoriesStage{},
		persistStage{},
		proxyConfigStage{},
		proxyEnableStage{},
		certificateStage{},
		proxyReloadStage{},
		dnsStage{},
	}
}

// ManifestStages returns the sequence that stops after persisting the
// manifest, leaving proxy, certificate, and DNS untouched.
func ManifestStages() []Stage {
	return []Stage{
		fetchStage{},
		extractStage{},
		rewriteStage{},
		directoriesStage{},
		persistStage{},
	}
}

// fetchStage resolves the input to a documentation URL and downloads the page.
type fetchStage struct{}

func (fetchStage) Name() string { return StageFetch }

func (fetchStage) Run(ctx *Context) (string, error) {
	url := ctx.Docs.BuildURL(ctx.State.Input)
	ctx.State.DocsURL = url

	page, err := ctx.Docs.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	ctx.State.Page = page
	return fmt.Sprintf("fetched %s (%d bytes)", url, len(page)), nil
}

// extractStage locates the compose manifest inside the fetched page.
type extractStage struct{}

func (extractStage) Name() string { return StageExtract }

func (extractStage) Run(ctx *Context) (string, error) {
	hint := docs.ServiceHint(ctx.State.DocsURL)
	text, err := manifest.Extract(ctx.State.Page, hint)
	if err != nil {
		return "", fmt.Errorf("extract manifest from %s: %w", ctx.State.DocsURL, err)
	}
	ctx.State.RawManifest = text
	return fmt.Sprintf("extracted manifest (%d bytes)", len(text)), nil
}

// rewriteStage fixes the service identifier and rewrites volume mounts
// to the canonical layout.
type rewriteStage struct{}

func (rewriteStage) Name() string { return StageRewrite }

func (rewriteStage) Run(ctx *Context) (string, error) {
	m, err := manifest.Parse(ctx.State.RawManifest)
	if err != nil {
		return "", err
	}
	ctx.State.Service = m.ServiceIdentifier(docs.ServiceHint(ctx.State.DocsURL))

	rewritten, err := manifest.RewriteMounts(ctx.State.RawManifest, ctx.State.Service, ctx.Config.DockerRoot)
	if err != nil {
		return "", err
	}
	ctx.State.Manifest = rewritten
	return fmt.Sprintf("service %q, mounts rooted at %s",
		ctx.State.Service, naming.ServiceDir(ctx.Config.DockerRoot, ctx.State.Service)), nil
}

// directoriesStage creates the host directories every bind mount needs.
type directoriesStage struct{}

func (directoriesStage) Name() string { return StageDirectories }

func (directoriesStage) Run(ctx *Context) (string, error) {
	result, err := materialize.EnsureDirectories(ctx.State.Manifest)
	if err != nil {
		return "", err
	}
	ctx.State.CreatedDirs = result.Created
	ctx.State.DirWarnings = result.Warnings
	for _, w := range result.Warnings {
		ctx.Observer.Printf("directory warning: %s", w)
	}
	return fmt.Sprintf("%d directories created, %d warnings",
		len(result.Created), len(result.Warnings)), nil
}

// persistStage writes the rewritten manifest to its canonical location.
type persistStage struct{}

func (persistStage) Name() string { return StagePersist }

func (persistStage) Run(ctx *Context) (string, error) {
	path, err := materialize.Persist(ctx.State.Manifest,
		ctx.Config.DockerRoot, ctx.State.Service, ctx.Config.ManifestFilename)
	if err != nil {
		return "", err
	}
	ctx.State.ManifestPath = path
	return "wrote " + path, nil
}

// proxyConfigStage generates the reverse proxy server block and installs
// it under sites-available.
type proxyConfigStage struct{}

func (proxyConfigStage) Name() string { return StageProxyConfig }

func (proxyConfigStage) Run(ctx *Context) (string, error) {
	conf, err := ctx.Proxy.GenerateProxyConfig(ctx, ctx.State.Service, ctx.Config.Domain)
	if err != nil {
		return "", err
	}
	ctx.State.ProxyConfig = conf

	site := naming.Site(ctx.State.Service, ctx.Config.Domain)
	path, err := ctx.Sites.Install(site, conf)
	if err != nil {
		return "", err
	}
	ctx.State.SitePath = path
	return "installed " + path, nil
}

// proxyEnableStage links the site into the enabled set.
type proxyEnableStage struct{}

func (proxyEnableStage) Name() string { return StageProxyEnable }

func (proxyEnableStage) Run(ctx *Context) (string, error) {
	site := naming.Site(ctx.State.Service, ctx.Config.Domain)
	created, err := ctx.Sites.Enable(site)
	if err != nil {
		return "", err
	}
	ctx.State.LinkCreated = created
	if !created {
		return site + " already enabled", nil
	}
	return "enabled " + site, nil
}

// certificateStage obtains a TLS certificate for the site.
type certificateStage struct{}

func (certificateStage) Name() string { return StageCertificate }

func (certificateStage) Run(ctx *Context) (string, error) {
	site := naming.Site(ctx.State.Service, ctx.Config.Domain)
	if err := ctx.Certs.Issue(ctx, site); err != nil {
		return "", err
	}
	return "certificate issued for " + site, nil
}

// proxyReloadStage validates the full proxy configuration and applies it.
type proxyReloadStage struct{}

func (proxyReloadStage) Name() string { return StageProxyReload }

func (proxyReloadStage) Run(ctx *Context) (string, error) {
	if err := ctx.Sites.TestConfig(ctx); err != nil {
		return "", err
	}
	if err := ctx.Sites.Reload(ctx); err != nil {
		return "", err
	}
	return "proxy reloaded", nil
}

// dnsStage points the public A record at the configured IP, creating it
// when absent. Transient API failures are retried; rejections are not.
type dnsStage struct{}

func (dnsStage) Name() string { return StageDNS }

func (dnsStage) Run(ctx *Context) (string, error) {
	opts := []retry.Option{
		retry.WithMaxRetries(ctx.Timeouts.RetryMaxAttempts),
		retry.WithInitialDelay(ctx.Timeouts.RetryInitialDelay),
	}

	var zoneID string
	err := retry.WithExponentialBackoff(ctx, func() error {
		id, err := ctx.DNS.GetZoneID(ctx, ctx.Config.Domain)
		if cloudflare.IsRejection(err) {
			return retry.Fatal(err)
		}
		if err != nil {
			return err
		}
		zoneID = id
		return nil
	}, opts...)
	if err != nil {
		return "", err
	}
	ctx.State.ZoneID = zoneID

	name := naming.RecordName(ctx.State.Service, ctx.Config.Domain)
	var record *cloudflare.Record
	var created bool
	err = retry.WithExponentialBackoff(ctx, func() error {
		rec, isNew, err := ctx.DNS.EnsureRecord(ctx, zoneID, name, ctx.Config.PublicIP)
		if cloudflare.IsRejection(err) {
			return retry.Fatal(err)
		}
		if err != nil {
			return err
		}
		record, created = rec, isNew
		return nil
	}, opts...)
	if err != nil {
		return "", err
	}
	ctx.State.Record = record
	ctx.State.RecordCreated = created

	verb := "updated"
	if created {
		verb = "created"
	}
	return fmt.Sprintf("%s A %s -> %s", verb, name, ctx.Config.PublicIP), nil
}
