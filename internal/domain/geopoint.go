package domain

import "math"

const earthRadiusKm = 6371

// Immutable geographic coordinates (latitude, longitude) in degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// HaversineKm returns the great-circle distance between two points in kilometers.
func HaversineKm(a, b GeoPoint) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Asin(math.Sqrt(h))

	return earthRadiusKm * c
}

// Lerp interpolates linearly between two points in geographic coordinates.
// Not geodesic; acceptable at urban segment lengths.
func Lerp(from, to GeoPoint, t float64) GeoPoint {
	return GeoPoint{
		Lat: from.Lat + (to.Lat-from.Lat)*t,
		Lng: from.Lng + (to.Lng-from.Lng)*t,
	}
}
