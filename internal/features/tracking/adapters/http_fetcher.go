package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"dhl-tracker/internal/core/httpclient"
	"dhl-tracker/internal/core/proxy"
)

// browserUserAgent is sent so DHL serves the same page a desktop browser gets.
const browserUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"

// HTTPFetcher retrieves tracking pages with a plain HTTP GET.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher using the logging HTTP client.
func NewHTTPFetcher(timeout time.Duration, proxySettings proxy.Settings) *HTTPFetcher {
	return &HTTPFetcher{
		client: httpclient.NewClient(timeout, httpclient.WithProxy(proxySettings.URL())),
	}
}

// Fetch returns the body of the page at url. Non-200 responses are errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}

	return string(body), nil
}
