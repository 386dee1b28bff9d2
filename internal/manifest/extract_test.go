package manifest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jellyfinCompose = `---
services:
  jellyfin:
    image: lscr.io/linuxserver/jellyfin:latest
    container_name: jellyfin
    environment:
      - PUID=1000
      - PGID=1000
      - TZ=Etc/UTC
    volumes:
      - /path/to/jellyfin/library:/config
      - /path/to/tvseries:/data/tvshows
      - /path/to/movies:/data/movies
    ports:
      - 8096:8096
    restart: unless-stopped`

func TestExtract_CodeBlock(t *testing.T) {
	doc := `<html><body>
<h2>docker-compose</h2>
<pre><code>` + jellyfinCompose + `</code></pre>
<h2>Parameters</h2>
</body></html>`

	got, err := Extract(doc, "jellyfin")
	require.NoError(t, err)
	assert.Contains(t, got, "services:")
	assert.Contains(t, got, "image: lscr.io/linuxserver/jellyfin:latest")
	assert.Contains(t, got, "- /path/to/movies:/data/movies")
	assert.NotContains(t, got, "<code>")
}

func TestExtract_CodeBlockPreferredOverDelimited(t *testing.T) {
	// Both a code block and a ---delimited region are present; the code
	// block must win.
	doc := `<pre>` + jellyfinCompose + `</pre>
---
services:
  decoy:
    image: example/decoy
Parameters`

	got, err := Extract(doc, "jellyfin")
	require.NoError(t, err)
	assert.NotContains(t, got, "decoy")
	assert.Contains(t, got, "jellyfin")
}

func TestExtract_DelimitedBlockWithHint(t *testing.T) {
	// No code block carries the vendor marker, so the separator-based
	// search has to find the manifest.
	doc := `Some intro text.
---
services:
  sonarr:
    image: example/sonarr:latest
    volumes:
      - /path/to/data:/config

docker cli
docker run -d sonarr`

	got, err := Extract(doc, "sonarr")
	require.NoError(t, err)
	assert.Contains(t, got, "sonarr:")
	assert.NotContains(t, got, "docker run")
}

func TestExtract_DelimitedBlockWrongHintFallsThrough(t *testing.T) {
	doc := `---
services:
  radarr:
    image: example/radarr
Parameters`

	// Hinted search misses, the unhinted separator search still extracts.
	got, err := Extract(doc, "jellyfin")
	require.NoError(t, err)
	assert.Contains(t, got, "radarr:")
}

func TestExtract_BareServicesBlock(t *testing.T) {
	doc := `no separators or code blocks here
services:
  whoogle:
    ports:
      - 5000:5000
trailing prose`

	got, err := Extract(doc, "")
	require.NoError(t, err)
	assert.Contains(t, got, "whoogle:")
}

func TestExtract_NotFound(t *testing.T) {
	_, err := Extract("<html><p>nothing compose-shaped at all</p></html>", "jellyfin")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestExtract_SanitizesEntitiesAndTags(t *testing.T) {
	doc := `<pre>services:
  jellyfin:
    image: lscr.io/linuxserver/jellyfin
    environment:
      - EXTRA=a&amp;b<span class="hl"></span>
</pre>`

	got, err := Extract(doc, "jellyfin")
	require.NoError(t, err)
	assert.Contains(t, got, "EXTRA=a&b")
	assert.NotContains(t, got, "span")
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "x & y bold", Sanitize("x &amp; y <b>bold</b>"))

	// Entities are decoded before the tag pass, so entity-encoded markup
	// is stripped like any other tag.
	assert.Equal(t, "", Sanitize("&lt;br&gt;"))
}
