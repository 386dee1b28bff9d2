package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/sage-selfhost/sage/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive configuration wizard.
	runWizard = config.RunWizard

	// writeConfigFile writes the config to a file.
	writeConfigFile = config.WriteFile
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	cfg, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	if err := writeConfigFile(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)
	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("sage - self-hosted service provisioning")
	fmt.Println("=======================================")
	fmt.Println()
	fmt.Println("This wizard creates a configuration with sensible defaults.")
	fmt.Println("API credentials stay out of the file; set them in the environment.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File:        %s\n", outputPath)
	fmt.Printf("  Domain:      %s\n", cfg.Domain)
	fmt.Printf("  Public IP:   %s\n", cfg.PublicIP)
	fmt.Printf("  Docker root: %s\n", cfg.DockerRoot)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  export ANTHROPIC_API_KEY=...")
	fmt.Println("  export CLOUDFLARE_API_TOKEN=...")
	fmt.Println("  sage provision jellyfin")
}
