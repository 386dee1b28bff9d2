package commands

import (
	"github.com/spf13/cobra"

	"github.com/sage-selfhost/sage/cmd/sage/handlers"
)

// Init returns the command for interactively creating a configuration file.
//
// Flags:
//
//	--output, -o: Path to output file (default "sage.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a configuration file",
		Long: `Interactively create a sage configuration file.

This command asks for the handful of values every provisioned service
shares:

  - Base domain for proxied sites
  - Public IP the DNS records should point at
  - Root directory for service config and data

API credentials are never written to the file; set them in the
environment instead:

  ANTHROPIC_API_KEY     proxy config generation
  CLOUDFLARE_API_TOKEN  DNS record management`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "sage.yaml", "Output file path")

	return cmd
}
