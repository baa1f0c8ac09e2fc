package services

import (
	"testing"
	"time"

	"arogya-dispatch-service/internal/domain"
)

func testQuote(speedKmph float64) domain.Quote {
	return domain.Quote{
		Vehicle: domain.Vehicle{
			ID:        "AMB-101",
			Class:     domain.ClassBLS,
			Position:  domain.GeoPoint{Lat: 22.5726, Lng: 88.3639},
			BaseFare:  150,
			PerKmRate: 25,
			SpeedKmph: speedKmph,
		},
		Pickup:      domain.GeoPoint{Lat: 22.5600, Lng: 88.3600},
		Destination: domain.GeoPoint{Lat: 22.5380, Lng: 88.3538},
	}
}

func TestSessionTripCompletes(t *testing.T) {
	s := NewSession(time.Millisecond)

	// Absurd speed so both legs finish within a few ticks.
	trip, err := s.StartTrip(testQuote(10000000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var last TripUpdate
	n := 0
	for u := range trip.Updates() {
		last = u
		n++
	}
	if n == 0 {
		t.Fatal("no updates before channel close")
	}
	if last.State != TripCompleted {
		t.Fatalf("final state = %v, want completed", last.State)
	}
	if last.TripID != trip.ID {
		t.Fatalf("update trip id = %s, want %s", last.TripID, trip.ID)
	}
}

func TestSessionStartTripSupersedes(t *testing.T) {
	s := NewSession(time.Hour) // no organic ticks during the test

	first, err := s.StartTrip(testQuote(40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := s.StartTrip(testQuote(40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.ActiveTrip() != second {
		t.Fatal("second trip should be active")
	}

	// Stopping the first runner is synchronous, so its feed is already
	// closed with a cancelled terminal update.
	var last TripUpdate
	n := 0
	for u := range first.Updates() {
		last = u
		n++
	}
	if n == 0 || last.State != TripCancelled {
		t.Fatalf("superseded trip ended with %v after %d updates, want cancelled", last.State, n)
	}

	s.EndTrip(second.ID)
}

func TestSessionEndTrip(t *testing.T) {
	s := NewSession(time.Hour)

	trip, err := s.StartTrip(testQuote(40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.EndTrip("no-such-trip") {
		t.Fatal("unknown trip id should report false")
	}
	if !s.EndTrip(trip.ID) {
		t.Fatal("active trip id should report true")
	}

	var last TripUpdate
	for u := range trip.Updates() {
		last = u
	}
	if last.State != TripCancelled {
		t.Fatalf("final state = %v, want cancelled", last.State)
	}
}

func TestSessionMapLayout(t *testing.T) {
	s := NewSession(time.Hour)

	trip, err := s.StartTrip(testQuote(40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.EndTrip(trip.ID)

	tiles, markers, ok := s.MapLayout(trip.ID)
	if !ok {
		t.Fatal("layout missing for active trip")
	}
	if len(tiles) != 9 {
		t.Fatalf("tile grid = %d, want 9", len(tiles))
	}
	if len(markers) != 3 {
		t.Fatalf("markers = %d, want 3", len(markers))
	}
	if markers[0].ID != "pickup" || markers[1].ID != "dest" || markers[2].ID != "ambulance" {
		t.Fatalf("marker order = %s, %s, %s", markers[0].ID, markers[1].ID, markers[2].ID)
	}

	if _, _, ok := s.MapLayout("no-such-trip"); ok {
		t.Fatal("layout should be missing for unknown trips")
	}
}
