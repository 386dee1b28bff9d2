package commands

import (
	"github.com/spf13/cobra"

	"github.com/sage-selfhost/sage/cmd/sage/handlers"
)

// Up returns the command for starting a provisioned service.
func Up() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "up <service>",
		Short: "Start a provisioned service",
		Long: `Start a provisioned service with docker compose.

Runs 'docker compose up -d' in the service's canonical directory.

Example:
  sage up jellyfin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Up(cmd.Context(), configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: sage.yaml)")

	return cmd
}

// Down returns the command for stopping a provisioned service.
func Down() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "down <service>",
		Short: "Stop a provisioned service",
		Long: `Stop a provisioned service with docker compose.

Runs 'docker compose down' in the service's canonical directory.

Example:
  sage down jellyfin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Down(cmd.Context(), configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: sage.yaml)")

	return cmd
}

// Status returns the command for listing a service's containers.
func Status() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [service]",
		Short: "Show container status for provisioned services",
		Long: `Show the containers belonging to a provisioned service.

Queries the Docker Engine for containers labelled with the service's
compose project. Without an argument every container carrying a compose
project label is listed.

Examples:
  sage status
  sage status jellyfin`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := ""
			if len(args) > 0 {
				service = args[0]
			}
			return handlers.Status(cmd.Context(), service)
		},
	}

	return cmd
}
