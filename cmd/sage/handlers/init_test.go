package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-selfhost/sage/internal/config"
)

func TestInit_WritesWizardResult(t *testing.T) {
	saveAndRestoreFactories(t)
	fileExists = func(string) bool { return false }
	runWizard = func(context.Context) (*config.Config, error) {
		return validTestConfig(), nil
	}

	var gotPath string
	var gotCfg *config.Config
	writeConfigFile = func(cfg *config.Config, path string) error {
		gotCfg, gotPath = cfg, path
		return nil
	}

	err := Init(context.Background(), "sage.yaml")
	require.NoError(t, err)
	assert.Equal(t, "sage.yaml", gotPath)
	assert.Equal(t, "example.com", gotCfg.Domain)
}

func TestInit_WizardCanceled(t *testing.T) {
	saveAndRestoreFactories(t)
	fileExists = func(string) bool { return false }
	runWizard = func(context.Context) (*config.Config, error) {
		return nil, errors.New("user aborted")
	}

	err := Init(context.Background(), "sage.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard canceled")
}

func TestInit_WriteFailure(t *testing.T) {
	saveAndRestoreFactories(t)
	fileExists = func(string) bool { return true }
	runWizard = func(context.Context) (*config.Config, error) {
		return validTestConfig(), nil
	}
	writeConfigFile = func(*config.Config, string) error {
		return errors.New("read-only filesystem")
	}

	err := Init(context.Background(), "sage.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config")
}
