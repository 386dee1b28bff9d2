package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/sage-selfhost/sage/internal/util/prerequisites"
)

// lookupEnv reads an environment variable (for testing injection).
var lookupEnv = os.LookupEnv

// checkOptionalPrereqs runs the optional tool checks.
var checkOptionalPrereqs = func() *prerequisites.CheckResults {
	return prerequisites.Check(prerequisites.OptionalTools())
}

// Doctor reports whether the tools and credentials provisioning depends
// on are available on this host. Missing required tools fail the command;
// missing optional pieces are only reported.
func Doctor(_ context.Context) error {
	fmt.Println("Checking prerequisites...")
	fmt.Println()

	required := checkDefaultPrereqs()
	printToolResults(required)

	optional := checkOptionalPrereqs()
	printToolResults(optional)

	fmt.Println()
	fmt.Println("Credentials:")
	printEnvCheck("ANTHROPIC_API_KEY", "proxy config generation")
	printEnvCheck("CLOUDFLARE_API_TOKEN", "DNS record management")
	fmt.Println()

	if err := required.Error(); err != nil {
		return err
	}
	fmt.Println("All required tools found.")
	return nil
}

func printToolResults(results *prerequisites.CheckResults) {
	for _, r := range results.Results {
		switch {
		case r.Found:
			fmt.Printf("  [OK] %-10s %s\n", r.Tool.Name, r.Path)
		case r.Tool.Required:
			fmt.Printf("  [!!] %-10s missing: %s\n", r.Tool.Name, r.Tool.Description)
			fmt.Printf("       install: %s\n", r.Tool.InstallURL)
		default:
			fmt.Printf("  [??] %-10s missing (optional): %s\n", r.Tool.Name, r.Tool.Description)
		}
	}
}

func printEnvCheck(name, purpose string) {
	if v, ok := lookupEnv(name); ok && v != "" {
		fmt.Printf("  [OK] %s set\n", name)
		return
	}
	fmt.Printf("  [??] %s not set (%s)\n", name, purpose)
}
