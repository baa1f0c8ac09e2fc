package tilemap

import (
	"math"

	"arogya-dispatch-service/internal/domain"
)

// TileSizePx is the edge length of a slippy-map tile in pixels.
const TileSizePx = 256

// Projection converts between geographic coordinates and world-space pixel
// coordinates using the spherical (Web) Mercator projection at a fixed zoom.
// World space spans TileSizePx * 2^zoom pixels in both axes.
//
// Behavior for latitudes outside +-90 degrees is undefined (Mercator
// singularity near the poles).
type Projection struct {
	zoom      int
	worldSize float64
}

func NewProjection(zoom int) Projection {
	return Projection{
		zoom:      zoom,
		worldSize: TileSizePx * math.Pow(2, float64(zoom)),
	}
}

func (p Projection) Zoom() int { return p.zoom }

// LngToX projects longitude to a world-space x coordinate.
func (p Projection) LngToX(lng float64) float64 {
	return (lng + 180) / 360 * p.worldSize
}

// LatToY projects latitude to a world-space y coordinate.
func (p Projection) LatToY(lat float64) float64 {
	latRad := lat * math.Pi / 180
	return (1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2 * p.worldSize
}

// XToLng is the exact inverse of LngToX.
func (p Projection) XToLng(x float64) float64 {
	return x/p.worldSize*360 - 180
}

// YToLat is the exact inverse of LatToY (Gudermannian inverse).
func (p Projection) YToLat(y float64) float64 {
	n := math.Pi - 2*math.Pi*(y/p.worldSize)
	return 180 / math.Pi * math.Atan(0.5*(math.Exp(n)-math.Exp(-n)))
}

// Project maps a point to world-space pixel coordinates.
func (p Projection) Project(pt domain.GeoPoint) (x, y float64) {
	return p.LngToX(pt.Lng), p.LatToY(pt.Lat)
}

// Unproject maps world-space pixel coordinates back to a point.
func (p Projection) Unproject(x, y float64) domain.GeoPoint {
	return domain.GeoPoint{Lat: p.YToLat(y), Lng: p.XToLng(x)}
}
