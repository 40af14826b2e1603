// Package fetcher downloads page snapshots for offline extraction.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/dtnitsch/algosensei/models"
	"github.com/dtnitsch/algosensei/pkg/caching"
	"github.com/dtnitsch/algosensei/pkg/document"
)

type Fetcher struct {
	client    *retryablehttp.Client
	userAgent string
	cache     *caching.Cache
	logger    *slog.Logger
}

// NewFetcher builds a retrying client from cfg. cache may be nil.
func NewFetcher(cfg models.FetchConfig, cache *caching.Cache, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	client := retryablehttp.NewClient()
	client.RetryMax = cfg.Retries
	client.HTTPClient.Timeout = cfg.Timeout
	client.Logger = logger

	return &Fetcher{
		client:    client,
		userAgent: cfg.UserAgent,
		cache:     cache,
		logger:    logger,
	}
}

// ErrTooLarge is returned for bodies above document.MaxHTMLSize.
var ErrTooLarge = errors.New("page exceeds maximum HTML size")

// GetPage fetches url and parses it into a page snapshot, decoding with the
// charset the server declared.
func (f *Fetcher) GetPage(ctx context.Context, url string) (*document.Page, error) {
	body, contentType, err := f.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	page, err := document.LoadResponse(body, url, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return page, nil
}

// GetHtmlBytes returns the raw body of url, from the cache when fresh.
func (f *Fetcher) GetHtmlBytes(ctx context.Context, url string) ([]byte, error) {
	body, _, err := f.fetch(ctx, url)
	return body, err
}

func (f *Fetcher) fetch(ctx context.Context, url string) ([]byte, string, error) {
	if f.cache != nil {
		if data, contentType, ok := f.cache.GetPage(url); ok {
			f.logger.Debug("cache hit", "url", url)
			return data, contentType, nil
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to fetch HTML, status code: %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, document.MaxHTMLSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}
	if len(bodyBytes) > document.MaxHTMLSize {
		return nil, "", fmt.Errorf("%w: %s", ErrTooLarge, url)
	}

	contentType := resp.Header.Get("Content-Type")
	if f.cache != nil {
		if err := f.cache.SetPage(url, bodyBytes, contentType); err != nil {
			f.logger.Warn("failed to cache page", "url", url, "error", err)
		}
	}
	return bodyBytes, contentType, nil
}
