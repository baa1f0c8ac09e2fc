package ports

import (
	"context"

	"arogya-dispatch-service/internal/domain"
)

// GeocodeCache persists query -> coordinate resolutions so repeated lookups
// avoid external geocoding calls. Keys are expected to be normalized by the
// caller.
type GeocodeCache interface {
	Get(ctx context.Context, query string) (p domain.GeoPoint, ok bool, err error)
	Put(ctx context.Context, query string, p domain.GeoPoint) error
}
