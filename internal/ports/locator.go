package ports

import (
	"context"

	"arogya-dispatch-service/internal/domain"
)

// ApproxLocation is an IP-derived coarse position and the provider that
// produced it.
type ApproxLocation struct {
	Point  domain.GeoPoint
	Source string
}

// ApproxLocator estimates the caller's position without GPS, typically by
// trying an ordered list of IP geolocation providers.
type ApproxLocator interface {
	Locate(ctx context.Context) (ApproxLocation, error)
}
