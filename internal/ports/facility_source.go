package ports

import (
	"context"

	"arogya-dispatch-service/internal/domain"
)

// FacilitySource loads the facility reference dataset. Implementations are
// expected to fall back to a bundled default set on any failure, so Load
// returning an error means even the fallback was unusable.
type FacilitySource interface {
	Load(ctx context.Context) ([]domain.Facility, error)
}
