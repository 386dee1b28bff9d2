// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/sage-selfhost/sage/internal/config"
	"github.com/sage-selfhost/sage/internal/platform/anthropic"
	"github.com/sage-selfhost/sage/internal/platform/certbot"
	"github.com/sage-selfhost/sage/internal/platform/cloudflare"
	"github.com/sage-selfhost/sage/internal/platform/docs"
	"github.com/sage-selfhost/sage/internal/platform/nginx"
	"github.com/sage-selfhost/sage/internal/provisioning"
	"github.com/sage-selfhost/sage/internal/util/prerequisites"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfigFile loads configuration from a file.
	loadConfigFile = config.Load

	// newWorkflowContext builds a provisioning context with live platform clients.
	newWorkflowContext = func(ctx context.Context, cfg *config.Config) *provisioning.Context {
		pctx := provisioning.NewContext(ctx, cfg)
		pctx.Docs = docs.NewFetcher(cfg.DocsBaseURL, pctx.Timeouts.Fetch)
		pctx.Proxy = anthropic.NewClient(cfg.Anthropic.APIKey, cfg.Anthropic.Model,
			cfg.Anthropic.MaxTokens, pctx.Timeouts.Generate)
		pctx.Sites = nginx.NewManager(cfg.Nginx.SitesAvailable, cfg.Nginx.SitesEnabled)
		pctx.Certs = certbot.Issuer{}
		pctx.DNS = cloudflare.NewClient(cfg.Cloudflare.APIToken, pctx.Timeouts.DNS)
		return pctx
	}

	// runStages executes a provisioning stage sequence.
	runStages = provisioning.RunStages

	// checkDefaultPrereqs runs prerequisite checks.
	checkDefaultPrereqs = prerequisites.CheckDefault
)

// Provision runs the provisioning workflow for a single service.
//
// The workflow fetches the service's documentation, extracts and rewrites
// its compose manifest, writes it to the canonical location, then
// configures the reverse proxy, obtains a TLS certificate, and points the
// DNS record at this host. With manifestOnly only the manifest stages run.
func Provision(ctx context.Context, configPath, input string, manifestOnly bool) error {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}

	stages := provisioning.DefaultStages()
	if manifestOnly {
		stages = provisioning.ManifestStages()
		if err := cfg.ValidateExtract(); err != nil {
			return err
		}
	} else {
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := checkPrerequisites(); err != nil {
			return err
		}
	}

	log.Printf("Provisioning %s", input)
	report, runErr := provisionService(ctx, cfg, input, stages)
	fmt.Println(report.Render(stages))
	return runErr
}

// provisionService runs one service through the given stage sequence.
func provisionService(ctx context.Context, cfg *config.Config, input string, stages []provisioning.Stage) (*provisioning.Report, error) {
	pctx := newWorkflowContext(ctx, cfg)
	pctx.State.Input = input
	return runStages(pctx, stages)
}

// checkPrerequisites verifies required client tools are available.
func checkPrerequisites() error {
	results := checkDefaultPrereqs()
	for _, r := range results.Results {
		if r.Found {
			log.Printf("  Found %s (%s)", r.Tool.Name, r.Path)
		}
	}
	if err := results.Error(); err != nil {
		return fmt.Errorf("prerequisites check failed: %w", err)
	}
	return nil
}
