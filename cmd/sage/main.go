// Package main is the entry point for the sage CLI.
//
// sage provisions self-hosted services end to end: it pulls the
// docker-compose manifest from the vendor's documentation, rewrites its
// volume mounts into a canonical per-service layout, and wires up the
// reverse proxy, TLS certificate, and DNS record for the service.
//
// Commands: init, extract, provision, setup, up, down, status, doctor.
//
// For detailed usage information, run:
//
//	sage --help
package main

import (
	"fmt"
	"os"

	"github.com/sage-selfhost/sage/cmd/sage/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
