package tilemap

import (
	"math"
	"testing"

	"arogya-dispatch-service/internal/domain"
)

var kolkata = domain.GeoPoint{Lat: 22.5726, Lng: 88.3639}

func TestTileGridShape(t *testing.T) {
	m := New(640, 400, kolkata, 14)
	tiles := m.TileGrid()

	if len(tiles) != 9 {
		t.Fatalf("grid size = %d, want 9", len(tiles))
	}

	// The middle entry is the tile under the center.
	center := tiles[4]
	cx := m.Projection().LngToX(kolkata.Lng)
	cy := m.Projection().LatToY(kolkata.Lat)
	if center.X != int(math.Floor(cx/TileSizePx)) || center.Y != int(math.Floor(cy/TileSizePx)) {
		t.Fatalf("center tile = (%d,%d)", center.X, center.Y)
	}

	// Neighbors differ by exactly one tile coordinate and one tile of pixels.
	if tiles[0].X != center.X-1 || tiles[0].Y != center.Y-1 {
		t.Fatalf("corner tile = (%d,%d), want (%d,%d)", tiles[0].X, tiles[0].Y, center.X-1, center.Y-1)
	}
	if d := center.LeftPx - tiles[0].LeftPx; d != TileSizePx {
		t.Fatalf("horizontal tile spacing = %v, want %d", d, TileSizePx)
	}
	if d := center.TopPx - tiles[0].TopPx; d != TileSizePx {
		t.Fatalf("vertical tile spacing = %v, want %d", d, TileSizePx)
	}
}

func TestScreenToGeoCenterInverse(t *testing.T) {
	m := New(640, 400, kolkata, 14)

	// The viewport center maps back to the map center.
	p := m.ScreenToGeo(320, 200)
	if math.Abs(p.Lat-kolkata.Lat) > 1e-9 || math.Abs(p.Lng-kolkata.Lng) > 1e-9 {
		t.Fatalf("viewport center -> %+v, want %+v", p, kolkata)
	}

	// ProjectToScreen and ScreenToGeo are inverses through the viewport frame.
	target := domain.GeoPoint{Lat: 22.58, Lng: 88.37}
	dx, dy := m.ProjectToScreen(target)
	back := m.ScreenToGeo(320+dx, 200+dy)
	if math.Abs(back.Lat-target.Lat) > 1e-9 || math.Abs(back.Lng-target.Lng) > 1e-9 {
		t.Fatalf("round trip %+v -> %+v", target, back)
	}
}

func TestMarkerLayoutOrderAndCenter(t *testing.T) {
	m := New(640, 400, kolkata, 14)
	m.AddMarker("pickup", kolkata, "Pickup")
	m.AddMarker("dest", domain.GeoPoint{Lat: 22.58, Lng: 88.37}, "Destination")

	layout := m.MarkerLayout()
	if len(layout) != 2 {
		t.Fatalf("layout size = %d, want 2", len(layout))
	}
	if layout[0].ID != "pickup" || layout[1].ID != "dest" {
		t.Fatalf("insertion order lost: %s, %s", layout[0].ID, layout[1].ID)
	}

	// A marker at the center sits at the middle of the container.
	if layout[0].LeftPx != 320 || layout[0].TopPx != 200 {
		t.Fatalf("center marker at (%v,%v), want (320,200)", layout[0].LeftPx, layout[0].TopPx)
	}
}

func TestUpdateMarker(t *testing.T) {
	m := New(640, 400, kolkata, 14)
	m.AddMarker("ambulance", kolkata, "Ambulance")

	moved := domain.GeoPoint{Lat: 22.59, Lng: 88.40}
	if !m.UpdateMarker("ambulance", moved) {
		t.Fatal("known marker reported missing")
	}
	if m.UpdateMarker("ghost", moved) {
		t.Fatal("unknown marker reported moved")
	}

	layout := m.MarkerLayout()
	if len(layout) != 1 || layout[0].Position != moved {
		t.Fatalf("marker not moved: %+v", layout)
	}
}

func TestSetCenterShiftsLayout(t *testing.T) {
	m := New(640, 400, kolkata, 14)
	m.AddMarker("pickup", kolkata, "Pickup")

	m.SetCenter(domain.GeoPoint{Lat: 22.58, Lng: 88.37})
	layout := m.MarkerLayout()
	if layout[0].LeftPx == 320 && layout[0].TopPx == 200 {
		t.Fatal("marker should leave the viewport center after recentering")
	}
}
