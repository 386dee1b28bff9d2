package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-selfhost/sage/internal/util/prerequisites"
)

func TestDoctor_AllPresent(t *testing.T) {
	saveAndRestoreFactories(t)
	checkDefaultPrereqs = func() *prerequisites.CheckResults {
		return &prerequisites.CheckResults{
			Results: []prerequisites.CheckResult{
				{Tool: prerequisites.Tool{Name: "docker", Required: true}, Found: true, Path: "/usr/bin/docker"},
			},
		}
	}
	checkOptionalPrereqs = func() *prerequisites.CheckResults {
		return &prerequisites.CheckResults{}
	}
	lookupEnv = func(string) (string, bool) { return "set", true }

	err := Doctor(context.Background())
	require.NoError(t, err)
}

func TestDoctor_MissingRequiredTool(t *testing.T) {
	saveAndRestoreFactories(t)
	nginxTool := prerequisites.Tool{
		Name:       "nginx",
		Required:   true,
		InstallURL: "https://nginx.org/en/docs/install.html",
	}
	checkDefaultPrereqs = func() *prerequisites.CheckResults {
		return &prerequisites.CheckResults{
			Results: []prerequisites.CheckResult{{Tool: nginxTool}},
			Missing: []prerequisites.Tool{nginxTool},
		}
	}
	checkOptionalPrereqs = func() *prerequisites.CheckResults {
		return &prerequisites.CheckResults{}
	}
	lookupEnv = func(string) (string, bool) { return "", false }

	err := Doctor(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nginx")
}
