package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sage-selfhost/sage/internal/provisioning"
)

// DefaultStack is the set of services `sage setup` provisions, in order.
// Prowlarr goes first so the indexer is ready when the others come up.
var DefaultStack = []string{"prowlarr", "jellyfin", "sonarr", "radarr"}

// Setup provisions the default media stack. Each service runs the full
// workflow; a failure stops that service but the rest are still attempted.
func Setup(ctx context.Context, configPath string) error {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := checkPrerequisites(); err != nil {
		return err
	}

	stages := provisioning.DefaultStages()
	var failed []string
	for _, service := range DefaultStack {
		log.Printf("Provisioning %s", service)
		report, err := provisionService(ctx, cfg, service, stages)
		fmt.Println(report.Render(stages))
		if err != nil {
			log.Printf("%s failed: %v", service, err)
			failed = append(failed, service)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("setup incomplete, re-run for: %s", strings.Join(failed, ", "))
	}
	return nil
}
