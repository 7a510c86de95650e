package assets

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/mapstitch/config"
)

// Fetcher downloads sprite files from the tile CDN.
type Fetcher struct {
	baseURL string
	client  *http.Client
}

// NewFetcher returns a Fetcher for the given CDN base URL. An empty base
// uses the configured default.
func NewFetcher(baseURL string) *Fetcher {
	if baseURL == "" {
		baseURL = config.Fetch.BaseURL
	}
	return &Fetcher{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/",
		client:  &http.Client{Timeout: config.Fetch.Timeout},
	}
}

// Fetch downloads <base>/<name>.gif and writes it to path, creating the
// sprite directory if needed. A 404 reports ErrMissingSprite, the same as a
// local miss.
func (f *Fetcher) Fetch(name, path string) error {
	url := f.baseURL + name + ".gif"
	log.Printf("[fetch] %s", url)

	resp, err := f.client.Get(url)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", url, ErrMissingSprite)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create sprite dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write sprite %s: %w", path, err)
	}
	return nil
}
