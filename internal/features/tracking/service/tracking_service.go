package service

import (
	"context"
	"errors"
	"fmt"

	"dhl-tracker/internal/features/tracking/adapters/dhlpage"
	"dhl-tracker/internal/features/tracking/domain"
	"dhl-tracker/internal/features/tracking/ports"
)

// ErrCourierNotSupported is returned when no provider supports the requested courier.
var ErrCourierNotSupported = errors.New("courier not supported")

// TrackingService orchestrates tracking requests across courier providers.
type TrackingService struct {
	providers []ports.TrackingProvider
}

// NewTrackingService creates a new TrackingService with the given providers.
func NewTrackingService(providers []ports.TrackingProvider) *TrackingService {
	return &TrackingService{
		providers: providers,
	}
}

// GetTrackingStatus retrieves the tracking status for a code from the first provider
// that supports the courier.
func (s *TrackingService) GetTrackingStatus(ctx context.Context, trackingCode, courier string) (*domain.TrackingStatus, error) {
	for _, provider := range s.providers {
		if provider.SupportsCourier(courier) {
			status, err := provider.GetTrackingStatus(ctx, trackingCode)
			if err != nil {
				return nil, fmt.Errorf("failed to get tracking from provider: %w", err)
			}
			return status, nil
		}
	}

	return nil, ErrCourierNotSupported
}

// ParsePage parses a tracking page the caller already has, without any network access.
func (s *TrackingService) ParsePage(html string) (*domain.TrackingStatus, error) {
	return dhlpage.ParseTrackingPage(html)
}
