package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/sage-selfhost/sage/internal/manifest"
	"github.com/sage-selfhost/sage/internal/materialize"
	"github.com/sage-selfhost/sage/internal/platform/compose"
	"github.com/sage-selfhost/sage/internal/util/naming"
)

// Factory function variables for the compose commands - replaced in tests.
var (
	composeUp     = compose.Up
	composeDown   = compose.Down
	composeStatus = compose.Status
)

// Up starts a provisioned service with docker compose.
func Up(ctx context.Context, configPath, service string) error {
	dir, err := serviceDir(configPath, service)
	if err != nil {
		return err
	}
	log.Printf("Starting %s in %s", service, dir)
	if err := composeUp(ctx, dir); err != nil {
		return err
	}
	fmt.Printf("%s is up\n", service)
	return nil
}

// Down stops a provisioned service with docker compose.
func Down(ctx context.Context, configPath, service string) error {
	dir, err := serviceDir(configPath, service)
	if err != nil {
		return err
	}
	log.Printf("Stopping %s in %s", service, dir)
	if err := composeDown(ctx, dir); err != nil {
		return err
	}
	fmt.Printf("%s is down\n", service)
	return nil
}

// Status lists the containers belonging to a service's compose project.
// With an empty service every compose-labelled container is listed.
func Status(ctx context.Context, service string) error {
	project := manifest.NormalizeService(service)
	statuses, err := composeStatus(ctx, project)
	if err != nil {
		return err
	}

	if len(statuses) == 0 {
		if project == "" {
			fmt.Println("No compose containers running.")
		} else {
			fmt.Printf("No containers running for %s.\n", project)
		}
		return nil
	}

	for _, s := range statuses {
		fmt.Printf("%-30s %-12s %s\n", s.Name, s.State, s.Status)
	}
	return nil
}

// serviceDir resolves the canonical on-disk directory for a service.
func serviceDir(configPath, service string) (string, error) {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return "", err
	}
	id := manifest.NormalizeService(service)
	return materialize.ExpandHome(naming.ServiceDir(cfg.DockerRoot, id))
}
