package tilemap

import (
	"math"

	"arogya-dispatch-service/internal/domain"
)

// Marker is a labeled point pinned to the map by id.
type Marker struct {
	ID       string
	Position domain.GeoPoint
	Label    string
}

// Tile addresses one slippy-map tile and where it sits inside the viewport.
type Tile struct {
	Zoom int
	X    int
	Y    int
	// Pixel offset of the tile's top-left corner from the viewport's top-left.
	LeftPx float64
	TopPx  float64
}

// MarkerOffset is a marker's pixel position from the viewport's top-left.
type MarkerOffset struct {
	Marker
	LeftPx float64
	TopPx  float64
}

// Map owns a viewport (center, zoom, container size) and a set of markers,
// and computes the tile grid and marker layout for the current center.
// It carries no UI dependency; callers render the layouts it returns.
type Map struct {
	proj    Projection
	widthPx float64
	heightPx float64
	center  domain.GeoPoint
	markers map[string]domain.GeoPoint
	labels  map[string]string
	order   []string
}

// New creates a map with the given container size, center and zoom.
func New(widthPx, heightPx int, center domain.GeoPoint, zoom int) *Map {
	return &Map{
		proj:     NewProjection(zoom),
		widthPx:  float64(widthPx),
		heightPx: float64(heightPx),
		center:   center,
		markers:  make(map[string]domain.GeoPoint),
		labels:   make(map[string]string),
	}
}

func (m *Map) Center() domain.GeoPoint { return m.center }

func (m *Map) Projection() Projection { return m.proj }

// SetCenter replaces the viewport center. Tile and marker layouts computed
// afterwards are consistent with the new center.
func (m *Map) SetCenter(p domain.GeoPoint) {
	m.center = p
}

// AddMarker inserts or overwrites a marker keyed by id.
func (m *Map) AddMarker(id string, p domain.GeoPoint, label string) {
	if _, ok := m.markers[id]; !ok {
		m.order = append(m.order, id)
	}
	m.markers[id] = p
	m.labels[id] = label
}

// UpdateMarker moves an existing marker. Unknown ids are a no-op; the return
// value reports whether the marker was found.
func (m *Map) UpdateMarker(id string, p domain.GeoPoint) bool {
	if _, ok := m.markers[id]; !ok {
		return false
	}
	m.markers[id] = p
	return true
}

// ProjectToScreen returns a point's pixel offset relative to the container center.
func (m *Map) ProjectToScreen(p domain.GeoPoint) (dx, dy float64) {
	px, py := m.proj.Project(p)
	cx, cy := m.proj.Project(m.center)
	return px - cx, py - cy
}

// ScreenToGeo converts pixel coordinates relative to the container's top-left
// corner back to geographic coordinates.
func (m *Map) ScreenToGeo(xPx, yPx float64) domain.GeoPoint {
	cx, cy := m.proj.Project(m.center)
	x := cx + (xPx - m.widthPx/2)
	y := cy + (yPx - m.heightPx/2)
	return m.proj.Unproject(x, y)
}

// TileGrid computes the 3x3 grid of tiles covering the viewport: the tile
// under the center plus its 8 neighbors, each positioned so the fractional
// remainder of the center pixel aligns tiles under the viewport center.
func (m *Map) TileGrid() []Tile {
	cx, cy := m.proj.Project(m.center)
	centerTileX := int(math.Floor(cx / TileSizePx))
	centerTileY := int(math.Floor(cy / TileSizePx))

	tiles := make([]Tile, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			tiles = append(tiles, Tile{
				Zoom:   m.proj.Zoom(),
				X:      centerTileX - 1 + i,
				Y:      centerTileY - 1 + j,
				LeftPx: float64(i-1)*TileSizePx + m.widthPx/2 - math.Mod(cx, TileSizePx),
				TopPx:  float64(j-1)*TileSizePx + m.heightPx/2 - math.Mod(cy, TileSizePx),
			})
		}
	}
	return tiles
}

// MarkerLayout returns every marker with its pixel offset from the viewport's
// top-left, in insertion order.
func (m *Map) MarkerLayout() []MarkerOffset {
	out := make([]MarkerOffset, 0, len(m.order))
	for _, id := range m.order {
		p := m.markers[id]
		dx, dy := m.ProjectToScreen(p)
		out = append(out, MarkerOffset{
			Marker: Marker{ID: id, Position: p, Label: m.labels[id]},
			LeftPx: m.widthPx/2 + dx,
			TopPx:  m.heightPx/2 + dy,
		})
	}
	return out
}
