package ports

import (
	"context"

	"arogya-dispatch-service/internal/domain"
)

// Geocoder resolves free text to coordinates and coordinates to a display
// string. Both directions are best-effort collaborators: callers must have a
// fallback for failures.
type Geocoder interface {
	// Forward returns the single best match for a free-text query, or
	// ok=false when the service had no result.
	Forward(ctx context.Context, query string) (p domain.GeoPoint, ok bool, err error)

	// Reverse returns a human-readable address for a point.
	Reverse(ctx context.Context, p domain.GeoPoint) (string, error)
}
