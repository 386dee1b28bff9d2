package commands

import (
	"github.com/spf13/cobra"

	"github.com/sage-selfhost/sage/cmd/sage/handlers"
)

// Provision returns the command for running the full provisioning workflow
// for a single service.
//
// Optional flags:
//
//	--config, -c: Path to configuration file (default: auto-detect sage.yaml)
//	--manifest-only: Stop after writing the manifest; skip proxy, TLS, and DNS
//
// Environment variables:
//
//	ANTHROPIC_API_KEY: API key for proxy config generation (required)
//	CLOUDFLARE_API_TOKEN: API token for DNS record management (required)
func Provision() *cobra.Command {
	var (
		configPath   string
		manifestOnly bool
	)

	cmd := &cobra.Command{
		Use:   "provision <service|url>",
		Short: "Provision a service end to end",
		Long: `Provision a self-hosted service end to end.

The workflow fetches the vendor's documentation, extracts the
docker-compose manifest, rewrites its volume mounts into the canonical
layout, writes it to disk, then configures nginx, obtains a TLS
certificate, reloads the proxy, and points a DNS record at this host.

Stages run in order and the workflow halts at the first failure;
completed stages are left in place so a re-run picks up where it
stopped.

Examples:
  # Provision jellyfin under jellyfin.<domain>
  sage provision jellyfin

  # Only fetch and write the manifest
  sage provision jellyfin --manifest-only`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Provision(cmd.Context(), configPath, args[0], manifestOnly)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: sage.yaml)")
	cmd.Flags().BoolVar(&manifestOnly, "manifest-only", false, "Stop after writing the manifest")

	return cmd
}
