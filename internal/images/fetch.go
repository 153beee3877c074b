package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"audiobook-flow/internal/logger"
)

const commonsEndpoint = "https://commons.wikimedia.org/w/api.php"

// Fetcher downloads candidate slideshow images from Wikimedia Commons.
type Fetcher struct {
	client *http.Client
	logger logger.Logger
}

// NewFetcher creates a Fetcher with a 30 second request timeout.
func NewFetcher(log logger.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
		logger: log,
	}
}

type commonsResponse struct {
	Query struct {
		Pages map[string]commonsPage `json:"pages"`
	} `json:"query"`
}

type commonsPage struct {
	Title     string `json:"title"`
	ImageInfo []struct {
		URL string `json:"url"`
	} `json:"imageinfo"`
}

// Fetch searches Commons for query, downloads up to count supported images
// into destDir, and returns their paths. Failing to download any image at
// all is an error.
func (f *Fetcher) Fetch(ctx context.Context, query, destDir string, count int) ([]string, error) {
	if count <= 0 {
		count = 8
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("create images dir: %w", err)
	}

	pages, err := f.search(ctx, query, count*2)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, page := range pages {
		if len(paths) >= count {
			break
		}
		if len(page.ImageInfo) == 0 || page.ImageInfo[0].URL == "" {
			continue
		}
		imageURL := page.ImageInfo[0].URL
		if !IsSupported(imageURL) {
			continue
		}

		name := strings.TrimPrefix(page.Title, "File:")
		name = strings.ReplaceAll(name, " ", "_")
		path := filepath.Join(destDir, name)

		if err := f.download(ctx, imageURL, path); err != nil {
			f.logger.Warn(ctx, "Skipping image %s: %v", imageURL, err)
			continue
		}
		paths = append(paths, path)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("could not download related images from Wikimedia Commons for query %q", query)
	}

	f.logger.Info(ctx, "Downloaded %d images for query %q", len(paths), query)
	return paths, nil
}

func (f *Fetcher) search(ctx context.Context, query string, limit int) ([]commonsPage, error) {
	params := url.Values{
		"action":       {"query"},
		"generator":    {"search"},
		"gsrsearch":    {query},
		"gsrnamespace": {"6"},
		"gsrlimit":     {strconv.Itoa(max(1, limit))},
		"prop":         {"imageinfo"},
		"iiprop":       {"url"},
		"format":       {"json"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, commonsEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("commons search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("commons search: unexpected status %s", resp.Status)
	}

	var decoded commonsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode commons response: %w", err)
	}

	// Map order is random; sort by page key so runs are reproducible.
	keys := make([]string, 0, len(decoded.Query.Pages))
	for k := range decoded.Query.Pages {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pages := make([]commonsPage, 0, len(keys))
	for _, k := range keys {
		pages = append(pages, decoded.Query.Pages[k])
	}
	return pages, nil
}

func (f *Fetcher) download(ctx context.Context, imageURL, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return fmt.Errorf("build download request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download: unexpected status %s", resp.Status)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("write image file: %w", err)
	}
	return nil
}
