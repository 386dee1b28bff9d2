package materialize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-selfhost/sage/internal/manifest"
)

// withHome points ~ expansion at a temp directory for the test's duration.
func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	orig := userHomeDir
	userHomeDir = func() (string, error) { return home, nil }
	t.Cleanup(func() { userHomeDir = orig })
	return home
}

func TestExpandHome(t *testing.T) {
	home := withHome(t)

	got, err := ExpandHome("~/Docker/jellyfin")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Docker", "jellyfin"), got)

	got, err = ExpandHome("/absolute/path")
	require.NoError(t, err)
	assert.Equal(t, "/absolute/path", got)
}

func TestEnsureDirectories_CreatesOnlyMissing(t *testing.T) {
	home := withHome(t)

	present1 := filepath.Join(home, "Docker", "jellyfin", "config")
	present2 := filepath.Join(home, "Docker", "jellyfin", "tvshows")
	require.NoError(t, os.MkdirAll(present1, 0o755))
	require.NoError(t, os.MkdirAll(present2, 0o755))

	text := `services:
  jellyfin:
    volumes:
      - ~/Docker/jellyfin/config:/config
      - ~/Docker/jellyfin/tvshows:/data/tvshows
      - ~/Docker/jellyfin/movies:/data/movies
`

	result, err := EnsureDirectories(text)
	require.NoError(t, err)

	absent := filepath.Join(home, "Docker", "jellyfin", "movies")
	assert.Equal(t, []string{absent}, result.Created)
	assert.DirExists(t, absent)
	assert.Empty(t, result.Warnings)
}

func TestEnsureDirectories_SkipsNamedVolumes(t *testing.T) {
	home := withHome(t)

	text := `services:
  db:
    volumes:
      - dbdata:/var/lib/db
`

	result, err := EnsureDirectories(text)
	require.NoError(t, err)
	assert.Empty(t, result.Created)

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEnsureDirectories_FileInTheWayIsWarning(t *testing.T) {
	home := withHome(t)

	blocker := filepath.Join(home, "notadir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	text := `services:
  app:
    volumes:
      - ~/notadir:/config
      - ~/fine:/data
`

	result, err := EnsureDirectories(text)
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "not a directory")
	assert.Equal(t, []string{filepath.Join(home, "fine")}, result.Created)
}

func TestEnsureDirectories_InvalidManifest(t *testing.T) {
	_, err := EnsureDirectories("not: [valid")
	require.Error(t, err)
	var verr *manifest.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestPersist(t *testing.T) {
	home := withHome(t)

	text := "services:\n  jellyfin:\n    image: lscr.io/linuxserver/jellyfin\n"
	path, err := Persist(text, "~/Docker", "jellyfin", "docker-compose.yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Docker", "jellyfin", "docker-compose.yml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, text, string(data))

	// Re-persisting overwrites the same file rather than duplicating.
	updated := text + "    restart: unless-stopped\n"
	path2, err := Persist(updated, "~/Docker", "jellyfin", "docker-compose.yml")
	require.NoError(t, err)
	assert.Equal(t, path, path2)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, updated, string(data))
}
