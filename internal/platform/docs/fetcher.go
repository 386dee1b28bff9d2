// Package docs fetches service documentation pages from which compose
// manifests are extracted.
package docs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sage-selfhost/sage/internal/manifest"
	"github.com/sage-selfhost/sage/internal/util/retry"
)

// userAgent mirrors a desktop browser; the docs site serves the full page
// markup only to browser-looking clients.
const userAgent = "Mozilla/5.0 (Linux; x86_64) AppleWebKit/537.36"

// Fetcher retrieves raw documentation pages.
type Fetcher struct {
	baseURL    string
	httpClient *http.Client
	retryOpts  []retry.Option
}

// NewFetcher creates a fetcher for the given docs base URL, e.g.
// "https://docs.linuxserver.io/images". Fetches are bounded by timeout.
func NewFetcher(baseURL string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BuildURL turns user input into a documentation URL. Full URLs pass
// through; bare image names, with or without the docs-style "docker-"
// prefix, map to "<base>/docker-<name>/".
func (f *Fetcher) BuildURL(input string) string {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return input
	}
	name := manifest.NormalizeService(input)
	return fmt.Sprintf("%s/docker-%s/", f.baseURL, name)
}

// ServiceHint extracts the expected service name from a docs URL, e.g.
// ".../images/docker-jellyfin/" -> "jellyfin". Empty when the URL does
// not follow the docs naming convention.
func ServiceHint(url string) string {
	idx := strings.LastIndex(url, "/docker-")
	if idx < 0 {
		return ""
	}
	name := url[idx+len("/docker-"):]
	name = strings.TrimRight(name, "/")
	if slash := strings.IndexByte(name, '/'); slash >= 0 {
		name = name[:slash]
	}
	return manifest.NormalizeService(name)
}

// Fetch retrieves the raw page text for a URL. Transient network errors
// are retried with backoff; HTTP rejections are not.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	var page string
	err := retry.WithExponentialBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return retry.Fatal(err)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := f.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return retry.Fatal(err)
			}
			return err
		}

		page = string(body)
		return nil
	}, f.retryOpts...)
	if err != nil {
		return "", err
	}
	return page, nil
}
