package adapter

import (
	"context"
	"fmt"
	"net/url"

	"dhl-tracker/internal/core/logger"
	"dhl-tracker/internal/features/tracking/adapters/dhlpage"
	"dhl-tracker/internal/features/tracking/domain"
	"dhl-tracker/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// CourierDHL is the courier name served by DHLAdapter.
const CourierDHL = "dhl"

// DHLAdapter handles tracking for DHL parcels by reading the public tracking page.
type DHLAdapter struct {
	baseURL    string
	language   string
	siteDomain string
	fetcher    ports.PageFetcher
	logger     *zap.Logger
}

// NewDHLAdapter creates a new DHLAdapter. language and siteDomain are passed through to
// DHL as the lang and domain query parameters.
func NewDHLAdapter(baseURL, language, siteDomain string, fetcher ports.PageFetcher) *DHLAdapter {
	return &DHLAdapter{
		baseURL:    baseURL,
		language:   language,
		siteDomain: siteDomain,
		fetcher:    fetcher,
		logger:     logger.Get(),
	}
}

// BuildTrackingURL returns the tracking page URL for a code. The code is not validated.
func BuildTrackingURL(baseURL, trackingCode, language, siteDomain string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid tracking url %q: %w", baseURL, err)
	}

	q := u.Query()
	if language != "" {
		q.Set("lang", language)
	}
	if siteDomain != "" {
		q.Set("domain", siteDomain)
	}
	q.Set("piececode", trackingCode)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// GetTrackingStatus fetches the DHL tracking page for a code and parses it.
func (a *DHLAdapter) GetTrackingStatus(ctx context.Context, trackingCode string) (*domain.TrackingStatus, error) {
	pageURL, err := BuildTrackingURL(a.baseURL, trackingCode, a.language, a.siteDomain)
	if err != nil {
		return nil, err
	}

	html, err := a.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tracking page: %w", err)
	}

	status, err := dhlpage.ParseTrackingPage(html)
	if err != nil {
		a.logger.Warn("DHL tracking page could not be parsed",
			zap.String("tracking_code", trackingCode),
			zap.Int("body_length", len(html)),
			zap.Error(err),
		)
		return nil, err
	}

	for _, item := range status.Items {
		if !item.Found() {
			a.logger.Debug("DHL has no shipment data for item",
				zap.String("tracking_code", item.ID),
				zap.Bool("no_data_available", item.NotFound.NoDataAvailable),
				zap.Bool("not_a_dhl_package", item.NotFound.NotADHLPackage),
			)
		}
	}

	a.logger.Debug("DHL tracking page parsed",
		zap.String("tracking_code", trackingCode),
		zap.Int("items", len(status.Items)),
	)

	return status, nil
}

// SupportsCourier returns true if this adapter supports dhl.
func (a *DHLAdapter) SupportsCourier(courierName string) bool {
	return courierName == CourierDHL
}
