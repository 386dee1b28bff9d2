package commands

import (
	"github.com/spf13/cobra"

	"github.com/sage-selfhost/sage/cmd/sage/handlers"
)

// Setup returns the command for provisioning the default media stack.
func Setup() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Provision the default media stack",
		Long: `Provision the default media stack in one pass.

Runs the full provisioning workflow for each of prowlarr, jellyfin,
sonarr, and radarr in turn. A failure stops the current service but the
remaining services are still attempted; the summary at the end lists
which ones need another run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Setup(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: sage.yaml)")

	return cmd
}
