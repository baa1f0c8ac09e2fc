package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"arogya-dispatch-service/internal/domain"
	"arogya-dispatch-service/internal/tilemap"
)

const (
	// DefaultTickInterval matches the original simulation step.
	DefaultTickInterval = 1500 * time.Millisecond

	trackMapWidthPx  = 640
	trackMapHeightPx = 400
	trackMapZoom     = 14
)

// TripUpdate is a simulator tick tagged with its owning trip.
type TripUpdate struct {
	TripID string
	TickUpdate
}

// Trip is one booked, simulated run. Updates delivers every tick and is
// closed after the terminal (Completed or Cancelled) update.
type Trip struct {
	ID    string
	Quote domain.Quote

	updates   chan TripUpdate
	closeOnce sync.Once
}

// Updates returns the trip's tick feed.
func (t *Trip) Updates() <-chan TripUpdate {
	return t.updates
}

// Session coordinates at most one live trip simulation and the tracking map
// it drives. Starting a new trip always supersedes the previous one: the old
// runner is stopped and drained before the new one is scheduled, so there is
// never more than one live tick source.
type Session struct {
	tickInterval time.Duration

	mu       sync.Mutex
	trackMap *tilemap.Map
	runner   *Runner
	active   *Trip
}

// NewSession creates a coordinator ticking at the given interval;
// a non-positive interval falls back to DefaultTickInterval.
func NewSession(tickInterval time.Duration) *Session {
	if tickInterval <= 0 {
		tickInterval = DefaultTickInterval
	}
	return &Session{tickInterval: tickInterval}
}

// StartTrip promotes a quote to a running trip: vehicle -> pickup ->
// destination. Any previous trip is cancelled first.
func (s *Session) StartTrip(q domain.Quote) (*Trip, error) {
	path := []domain.GeoPoint{q.Vehicle.Position, q.Pickup, q.Destination}
	sim, err := NewSimulator(path, q.Vehicle.SpeedKmph)
	if err != nil {
		return nil, fmt.Errorf("start trip: %w", err)
	}

	// Supersede the previous run before scheduling a new tick source.
	s.mu.Lock()
	prev := s.runner
	s.runner = nil
	s.mu.Unlock()
	if prev != nil {
		prev.Stop()
	}

	m := tilemap.New(trackMapWidthPx, trackMapHeightPx, q.Pickup, trackMapZoom)
	m.AddMarker("pickup", q.Pickup, "Pickup")
	m.AddMarker("dest", q.Destination, "Destination")
	m.AddMarker("ambulance", q.Vehicle.Position, "Ambulance")

	trip := &Trip{
		ID:      uuid.NewString(),
		Quote:   q,
		updates: make(chan TripUpdate, 16),
	}

	runner := StartRunner(sim, s.tickInterval, func(u TickUpdate) {
		s.apply(trip, u)
	})

	s.mu.Lock()
	s.trackMap = m
	s.runner = runner
	s.active = trip
	s.mu.Unlock()

	return trip, nil
}

// apply routes a tick to the tracking map and the trip's feed. Ticks from a
// superseded trip no longer touch the map; their feed still receives the
// terminal update so subscribers observe the cancellation.
func (s *Session) apply(trip *Trip, u TickUpdate) {
	s.mu.Lock()
	if s.active == trip {
		s.trackMap.UpdateMarker("ambulance", u.Position)
		s.trackMap.SetCenter(u.Position)
	}
	s.mu.Unlock()

	// Never block the tick loop on a slow subscriber.
	select {
	case trip.updates <- TripUpdate{TripID: trip.ID, TickUpdate: u}:
	default:
	}

	if u.State != TripRunning {
		trip.closeOnce.Do(func() { close(trip.updates) })
	}
}

// EndTrip cancels the identified trip. Unknown or already superseded ids
// report false; cancelling an already stopped trip is harmless.
func (s *Session) EndTrip(tripID string) bool {
	s.mu.Lock()
	if s.active == nil || s.active.ID != tripID {
		s.mu.Unlock()
		return false
	}
	runner := s.runner
	s.runner = nil
	s.mu.Unlock()

	if runner != nil {
		runner.Stop()
	}
	return true
}

// ActiveTrip returns the current trip, or nil when none is live.
func (s *Session) ActiveTrip() *Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// MapLayout returns the tracking map's current tile grid and marker layout
// for the identified trip.
func (s *Session) MapLayout(tripID string) ([]tilemap.Tile, []tilemap.MarkerOffset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil || s.active.ID != tripID || s.trackMap == nil {
		return nil, nil, false
	}
	return s.trackMap.TileGrid(), s.trackMap.MarkerLayout(), true
}
