package commands

import (
	"github.com/spf13/cobra"

	"github.com/sage-selfhost/sage/cmd/sage/handlers"
)

// Extract returns the command for extracting a rewritten compose manifest
// without touching the proxy, certificates, or DNS.
//
// Optional flags:
//
//	--config, -c: Path to configuration file (default: auto-detect sage.yaml)
//	--output, -o: Write the manifest to a file instead of stdout
func Extract() *cobra.Command {
	var (
		configPath string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "extract <service|url>",
		Short: "Fetch and print a service's rewritten compose manifest",
		Long: `Fetch a service's documentation page, extract its docker-compose
manifest, and rewrite the volume mounts into the canonical layout.

The manifest is printed to stdout; nothing is written to disk unless
--output is given. Accepts either a service name (resolved against the
vendor documentation site) or a full documentation URL.

Examples:
  # Print jellyfin's manifest with rewritten mounts
  sage extract jellyfin

  # Save it instead
  sage extract jellyfin -o docker-compose.yml

  # Use an explicit docs URL
  sage extract https://docs.linuxserver.io/images/docker-sonarr/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Extract(cmd.Context(), configPath, args[0], outputPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: sage.yaml)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the manifest to this file")

	return cmd
}
