package services

import (
	"errors"
	"fmt"
	"time"

	"arogya-dispatch-service/internal/domain"
)

// TripState is the simulator lifecycle state.
type TripState int

const (
	TripIdle TripState = iota
	TripRunning
	TripCompleted
	TripCancelled
)

func (s TripState) String() string {
	switch s {
	case TripIdle:
		return "idle"
	case TripRunning:
		return "running"
	case TripCompleted:
		return "completed"
	case TripCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

type segment struct {
	from     domain.GeoPoint
	to       domain.GeoPoint
	lengthKm float64
}

// TickUpdate is a snapshot of the simulated vehicle after an advance.
type TickUpdate struct {
	Position     domain.GeoPoint
	SegmentIndex int
	RemainingKm  float64
	EtaMinutes   int
	State        TripState
}

// Simulator advances a simulated vehicle along a multi-waypoint path.
//
// It is deterministic and owns no timer: the host calls Advance with the
// elapsed interval, which makes the state machine unit-testable without
// wall-clock dependency. Segment positions are interpolated linearly in
// geographic coordinates, an accepted approximation at urban scale.
//
// A Simulator is not safe for concurrent use; the owning runner serializes
// access.
type Simulator struct {
	segments       []segment
	speedKmph      float64
	speedMps       float64
	segIndex       int
	progressMeters float64
	state          TripState
}

// NewSimulator builds per-segment haversine distances and starts Running at
// segment 0, progress 0. A path of fewer than two waypoints is a programming
// error and is rejected up front.
func NewSimulator(path []domain.GeoPoint, speedKmph float64) (*Simulator, error) {
	if len(path) < 2 {
		return nil, fmt.Errorf("simulator: path needs at least 2 waypoints, got %d", len(path))
	}
	if speedKmph <= 0 {
		return nil, errors.New("simulator: speed must be positive")
	}

	segments := make([]segment, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		segments = append(segments, segment{
			from:     path[i],
			to:       path[i+1],
			lengthKm: domain.HaversineKm(path[i], path[i+1]),
		})
	}

	return &Simulator{
		segments:  segments,
		speedKmph: speedKmph,
		speedMps:  speedKmph * 1000 / 3600,
		state:     TripRunning,
	}, nil
}

func (s *Simulator) State() TripState { return s.state }

// Advance moves the vehicle by the elapsed interval and returns the resulting
// snapshot. Once the final segment completes the state becomes Completed and
// further calls are no-ops returning the terminal snapshot.
func (s *Simulator) Advance(dt time.Duration) TickUpdate {
	if s.state != TripRunning {
		return s.Snapshot()
	}

	s.progressMeters += s.speedMps * dt.Seconds()

	seg := s.segments[s.segIndex]
	totalMeters := seg.lengthKm * 1000

	t := 1.0
	if totalMeters > 0 {
		t = s.progressMeters / totalMeters
		if t > 1 {
			t = 1
		}
	}

	update := TickUpdate{
		Position:     domain.Lerp(seg.from, seg.to, t),
		SegmentIndex: s.segIndex,
		RemainingKm:  s.remainingKm(t),
		State:        TripRunning,
	}
	update.EtaMinutes = EstimateEtaMinutes(update.RemainingKm, s.speedKmph)

	if t >= 1 {
		// Clamp at the boundary: leftover progress does not spill into the
		// next segment.
		s.progressMeters = 0
		if s.segIndex == len(s.segments)-1 {
			s.state = TripCompleted
			update.State = TripCompleted
		} else {
			s.segIndex++
		}
	}

	return update
}

// Cancel stops the simulation regardless of current segment. Idempotent, and a
// no-op on an already completed run.
func (s *Simulator) Cancel() {
	if s.state == TripRunning {
		s.state = TripCancelled
	}
}

// Snapshot returns the current position and remaining estimate without
// advancing.
func (s *Simulator) Snapshot() TickUpdate {
	seg := s.segments[s.segIndex]
	totalMeters := seg.lengthKm * 1000

	t := 1.0
	if totalMeters > 0 {
		t = s.progressMeters / totalMeters
		if t > 1 {
			t = 1
		}
	}
	if s.state == TripCompleted {
		t = 1
	}

	u := TickUpdate{
		Position:     domain.Lerp(seg.from, seg.to, t),
		SegmentIndex: s.segIndex,
		RemainingKm:  s.remainingKm(t),
		State:        s.state,
	}
	u.EtaMinutes = EstimateEtaMinutes(u.RemainingKm, s.speedKmph)
	return u
}

func (s *Simulator) remainingKm(t float64) float64 {
	remaining := (1 - t) * s.segments[s.segIndex].lengthKm
	for i := s.segIndex + 1; i < len(s.segments); i++ {
		remaining += s.segments[i].lengthKm
	}
	return remaining
}
