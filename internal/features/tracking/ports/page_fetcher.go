package ports

import "context"

// PageFetcher retrieves the raw HTML of a tracking page.
type PageFetcher interface {
	// Fetch returns the body of the page at url.
	Fetch(ctx context.Context, url string) (string, error)
}
