package docs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-selfhost/sage/internal/util/retry"
)

func TestBuildURL(t *testing.T) {
	f := NewFetcher("https://docs.linuxserver.io/images", time.Second)

	assert.Equal(t, "https://docs.linuxserver.io/images/docker-jellyfin/", f.BuildURL("jellyfin"))
	assert.Equal(t, "https://docs.linuxserver.io/images/docker-nginx/", f.BuildURL("docker-nginx"))
	assert.Equal(t, "https://example.com/page", f.BuildURL("https://example.com/page"))
}

func TestServiceHint(t *testing.T) {
	assert.Equal(t, "jellyfin", ServiceHint("https://docs.linuxserver.io/images/docker-jellyfin/"))
	assert.Equal(t, "sonarr", ServiceHint("https://docs.linuxserver.io/images/docker-sonarr"))
	assert.Equal(t, "", ServiceHint("https://example.com/other/page"))
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla")
		_, _ = w.Write([]byte("<html>page body</html>"))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, time.Second)
	page, err := f.Fetch(context.Background(), srv.URL+"/docker-jellyfin/")
	require.NoError(t, err)
	assert.Equal(t, "<html>page body</html>", page)
}

func TestFetch_NotFoundIsNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, time.Second)
	_, err := f.Fetch(context.Background(), srv.URL+"/docker-missing/")
	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetch_ServerErrorRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, time.Second)
	f.retryOpts = append(f.retryOpts, retry.WithInitialDelay(time.Millisecond))
	page, err := f.Fetch(context.Background(), srv.URL+"/")
	require.NoError(t, err)
	assert.Equal(t, "recovered", page)
	assert.Equal(t, int32(3), hits.Load())
}
