package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/sage-selfhost/sage/internal/config"
	"github.com/sage-selfhost/sage/internal/manifest"
	"github.com/sage-selfhost/sage/internal/platform/docs"
)

// writeOutputFile writes the extracted manifest (for testing injection).
var writeOutputFile = os.WriteFile

// Extract fetches a service's documentation, extracts its compose
// manifest, and rewrites the volume mounts into the canonical layout.
// The result goes to stdout, or to outputPath when given. Nothing else
// is written; the proxy, certificate, and DNS stages never run.
func Extract(ctx context.Context, configPath, input, outputPath string) error {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}
	if err := cfg.ValidateExtract(); err != nil {
		return err
	}

	text, service, err := extractManifest(ctx, cfg, input)
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := writeOutputFile(outputPath, []byte(text), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outputPath, err)
		}
		fmt.Printf("Wrote %s manifest to %s\n", service, outputPath)
		return nil
	}

	fmt.Print(text)
	return nil
}

// extractManifest runs the fetch/extract/rewrite path without touching disk.
func extractManifest(ctx context.Context, cfg *config.Config, input string) (text, service string, err error) {
	pctx := newWorkflowContext(ctx, cfg)

	url := pctx.Docs.BuildURL(input)
	page, err := pctx.Docs.Fetch(ctx, url)
	if err != nil {
		return "", "", err
	}

	hint := docs.ServiceHint(url)
	raw, err := manifest.Extract(page, hint)
	if err != nil {
		return "", "", fmt.Errorf("extract manifest from %s: %w", url, err)
	}

	m, err := manifest.Parse(raw)
	if err != nil {
		return "", "", err
	}
	service = m.ServiceIdentifier(hint)

	rewritten, err := manifest.RewriteMounts(raw, service, cfg.DockerRoot)
	if err != nil {
		return "", "", err
	}
	return rewritten, service, nil
}
