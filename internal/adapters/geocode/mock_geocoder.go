package geocode

import (
	"context"
	"fmt"

	"arogya-dispatch-service/internal/domain"
)

type MockEntry struct {
	Query   string
	Point   domain.GeoPoint
	Address string
}

// MockGeocoder serves fixed fixtures, for tests and offline runs.
type MockGeocoder struct {
	forward map[string]domain.GeoPoint
	reverse map[domain.GeoPoint]string
}

func NewMockGeocoder(entries []MockEntry) *MockGeocoder {
	forward := make(map[string]domain.GeoPoint, len(entries))
	reverse := make(map[domain.GeoPoint]string, len(entries))
	for _, e := range entries {
		forward[e.Query] = e.Point
		reverse[e.Point] = e.Address
	}
	return &MockGeocoder{forward: forward, reverse: reverse}
}

func (m *MockGeocoder) Forward(ctx context.Context, query string) (domain.GeoPoint, bool, error) {
	p, ok := m.forward[query]
	return p, ok, nil
}

func (m *MockGeocoder) Reverse(ctx context.Context, p domain.GeoPoint) (string, error) {
	addr, ok := m.reverse[p]
	if !ok {
		return "", fmt.Errorf("no address for %.6f, %.6f", p.Lat, p.Lng)
	}
	return addr, nil
}
