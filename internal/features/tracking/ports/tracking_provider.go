package ports

import (
	"context"

	"dhl-tracker/internal/features/tracking/domain"
)

// TrackingProvider defines the interface for courier tracking implementations.
type TrackingProvider interface {
	// GetTrackingStatus retrieves the tracking status for a given tracking code.
	GetTrackingStatus(ctx context.Context, trackingCode string) (*domain.TrackingStatus, error)
	// SupportsCourier returns true if this provider supports the given courier name.
	SupportsCourier(courierName string) bool
}
