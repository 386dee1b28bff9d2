package compose

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/moby/moby/api/types/container"
	"github.com/moby/moby/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeCommands(t *testing.T, err error) *[][]string {
	t.Helper()
	var calls [][]string
	orig := runCommand
	runCommand = func(_ context.Context, dir, name string, args ...string) ([]byte, error) {
		calls = append(calls, append([]string{dir, name}, args...))
		return nil, err
	}
	t.Cleanup(func() { runCommand = orig })
	return &calls
}

func TestFindManifest(t *testing.T) {
	dir := t.TempDir()
	_, err := FindManifest(dir)
	require.Error(t, err)

	path := filepath.Join(dir, "compose.yaml")
	require.NoError(t, os.WriteFile(path, []byte("services: {}\n"), 0o644))

	got, err := FindManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestFindManifest_PrefersCanonicalName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "compose.yaml"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docker-compose.yml"), nil, 0o644))

	got, err := FindManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "docker-compose.yml"), got)
}

func TestUp(t *testing.T) {
	calls := fakeCommands(t, nil)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docker-compose.yml"), []byte("services: {}\n"), 0o644))

	require.NoError(t, Up(context.Background(), dir))
	require.Len(t, *calls, 1)
	assert.Equal(t, []string{dir, "docker", "compose", "up", "-d"}, (*calls)[0])
}

func TestUp_NoManifest(t *testing.T) {
	calls := fakeCommands(t, nil)

	err := Up(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no compose manifest")
	assert.Empty(t, *calls)
}

func TestDown(t *testing.T) {
	calls := fakeCommands(t, nil)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "compose.yml"), []byte("services: {}\n"), 0o644))

	require.NoError(t, Down(context.Background(), dir))
	require.Len(t, *calls, 1)
	assert.Equal(t, []string{dir, "docker", "compose", "down"}, (*calls)[0])
}

// fakeEngine implements engineLister for Status tests.
type fakeEngine struct {
	result  client.ContainerListResult
	gotOpts client.ContainerListOptions
}

func (f *fakeEngine) ContainerList(_ context.Context, options client.ContainerListOptions) (client.ContainerListResult, error) {
	f.gotOpts = options
	return f.result, nil
}

func TestStatus(t *testing.T) {
	engine := &fakeEngine{
		result: client.ContainerListResult{
			Items: []container.Summary{{
				ID:     "abc123",
				Names:  []string{"/jellyfin"},
				Image:  "lscr.io/linuxserver/jellyfin:latest",
				State:  "running",
				Status: "Up 2 hours",
				Labels: map[string]string{projectLabel: "jellyfin"},
			}},
		},
	}
	orig := newEngineClient
	newEngineClient = func() (engineLister, error) { return engine, nil }
	t.Cleanup(func() { newEngineClient = orig })

	statuses, err := Status(context.Background(), "jellyfin")
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, "jellyfin", statuses[0].Name)
	assert.Equal(t, "running", statuses[0].State)
	assert.Equal(t, "jellyfin", statuses[0].Project)
	assert.True(t, engine.gotOpts.All)
}
