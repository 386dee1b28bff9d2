package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "sage", cmd.Use)
	assert.Equal(t, "Provision self-hosted services behind nginx, TLS, and DNS", cmd.Short)
}

func TestRoot_HasSubcommands(t *testing.T) {
	cmd := Root()

	expectedSubcommands := []string{
		"init",
		"extract",
		"provision",
		"setup",
		"up",
		"down",
		"status",
		"doctor",
		"version",
		"completion",
	}

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}

	for _, expected := range expectedSubcommands {
		assert.True(t, subcommands[expected], "Expected subcommand %s not found", expected)
	}
}

func TestProvision_Flags(t *testing.T) {
	cmd := Provision()

	require.NotNil(t, cmd.Flags().Lookup("config"))
	require.NotNil(t, cmd.Flags().Lookup("manifest-only"))
	assert.NotNil(t, cmd.Args)
	assert.NotNil(t, cmd.RunE)
}

func TestExtract_Flags(t *testing.T) {
	cmd := Extract()

	require.NotNil(t, cmd.Flags().Lookup("config"))
	require.NotNil(t, cmd.Flags().Lookup("output"))
}

func TestVersion_Output(t *testing.T) {
	cmd := Version()
	require.NotNil(t, cmd)
	assert.Equal(t, "version", cmd.Use)
}
