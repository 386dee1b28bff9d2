// Package prerequisites checks that the external tools the provisioning
// workflow shells out to are installed.
package prerequisites

import (
	"fmt"
	"os/exec"
	"strings"
)

// Tool represents a client tool that may be required.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string

	// InstallURL provides a URL for installation instructions.
	InstallURL string
}

// DefaultTools returns the tools the full provisioning workflow needs.
func DefaultTools() []Tool {
	return []Tool{
		{
			Name:        "docker",
			Required:    true,
			Description: "Runs the provisioned service containers",
			InstallURL:  "https://docs.docker.com/engine/install/",
		},
		{
			Name:        "nginx",
			Required:    true,
			Description: "Reverse proxy in front of the services",
			InstallURL:  "https://nginx.org/en/docs/install.html",
		},
		{
			Name:        "certbot",
			Required:    true,
			Description: "Issues TLS certificates for the proxied sites",
			InstallURL:  "https://certbot.eff.org/instructions",
		},
	}
}

// ExtractTools returns the tools needed when only extracting manifests.
func ExtractTools() []Tool {
	return nil
}

// OptionalTools returns tools that are useful but not required.
func OptionalTools() []Tool {
	return []Tool{
		{
			Name:        "systemctl",
			Required:    false,
			Description: "Used to reload nginx; without it the proxy must be reloaded manually",
			InstallURL:  "https://www.freedesktop.org/wiki/Software/systemd/",
		},
	}
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool  Tool
	Found bool
	Path  string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tools are missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error if any required tools are missing.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.InstallURL))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Check verifies that the specified tools are available in PATH.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}
	for _, tool := range tools {
		result := CheckResult{Tool: tool}
		if path, err := exec.LookPath(tool.Name); err == nil {
			result.Found = true
			result.Path = path
		} else {
			results.Missing = append(results.Missing, tool)
		}
		results.Results = append(results.Results, result)
	}
	return results
}

// CheckDefault checks the default tool set.
func CheckDefault() *CheckResults {
	return Check(DefaultTools())
}
