package commands

import (
	"github.com/spf13/cobra"

	"github.com/sage-selfhost/sage/cmd/sage/handlers"
)

// Doctor returns the command for checking the host's prerequisites.
func Doctor() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that required tools and credentials are available",
		Long: `Check that the tools and credentials provisioning depends on are
available on this host.

Verifies docker, nginx, and certbot are installed, and reports whether
the ANTHROPIC_API_KEY and CLOUDFLARE_API_TOKEN environment variables
are set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context())
		},
	}
}
