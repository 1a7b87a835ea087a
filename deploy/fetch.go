// Copyright (c) Microsoft. All rights reserved.

package deploy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const defaultDownloadTimeout = 30 * time.Second

// HTTPFetcher is a [SpecFetcher] backed by net/http.
type HTTPFetcher struct {
	client *http.Client
}

// Verify interface compliance at compile time.
var _ SpecFetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates an [HTTPFetcher]. A nil client gets a default
// client with a 30 second timeout.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: defaultDownloadTimeout}
	}
	return &HTTPFetcher{client: client}
}

// Download fetches url and returns the response body. Any transport failure
// or non-2xx status yields a [*DownloadError].
func (f *HTTPFetcher) Download(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, &DownloadError{URL: url, Err: errors.New("empty specification URL")}
	}

	slog.DebugContext(ctx, "downloading OpenAPI specification", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &DownloadError{URL: url, Err: fmt.Errorf("create request: %w", err)}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &DownloadError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &DownloadError{URL: url, StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DownloadError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}

	slog.DebugContext(ctx, "downloaded OpenAPI specification", "url", url, "bytes", len(body))
	return body, nil
}
