package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"arogya-dispatch-service/internal/adapters/fleet"
	"arogya-dispatch-service/internal/api/dto"
	"arogya-dispatch-service/internal/domain"
	"arogya-dispatch-service/internal/services"
)

// TripHandler books confirmed quotes onto the session and streams the
// resulting simulation over websockets.
type TripHandler struct {
	Session *services.Session

	upgrader websocket.Upgrader
}

func NewTripHandler(session *services.Session) *TripHandler {
	return &TripHandler{
		Session: session,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Start confirms a booking: it rebuilds the quote for the chosen vehicle and
// hands it to the session, superseding any trip already in flight.
func (h *TripHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req dto.TripRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v, ok := fleet.FindVehicle(req.VehicleID)
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown vehicle")
		return
	}
	if req.Pickup == nil || req.Destination == nil {
		writeError(w, r, http.StatusBadRequest, "pickup and destination are required")
		return
	}

	pickup := domain.GeoPoint{Lat: req.Pickup.Lat, Lng: req.Pickup.Lng}
	dest := domain.GeoPoint{Lat: req.Destination.Lat, Lng: req.Destination.Lng}

	toPickup := domain.HaversineKm(v.Position, pickup)
	tripDist := domain.HaversineKm(pickup, dest)
	quote := domain.Quote{
		Vehicle:            v,
		DistanceToPickupKm: toPickup,
		TripDistanceKm:     tripDist,
		EtaToPickupMin:     services.EstimateEtaMinutes(toPickup, v.SpeedKmph),
		FareEstimate:       services.EstimateFare(tripDist, v),
		Pickup:             pickup,
		Destination:        dest,
	}

	trip, err := h.Session.StartTrip(quote)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	driver := fleet.PickDriver()
	writeJSON(w, r, http.StatusCreated, dto.TripResponse{
		TripID:         trip.ID,
		VehicleID:      v.ID,
		ServiceClass:   string(v.Class),
		Registration:   fleet.VehicleRegistration(v.ID),
		DriverName:     driver.Name,
		DriverPhone:    driver.Phone,
		TripDistanceKm: tripDist,
		FareEstimate:   quote.FareEstimate,
	})
}

// Live upgrades to a websocket and streams tick updates for the identified
// trip until it reaches a terminal state or the client disconnects.
func (h *TripHandler) Live(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")

	trip := h.Session.ActiveTrip()
	if trip == nil || trip.ID != tripID {
		writeError(w, r, http.StatusNotFound, "no such trip")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: trip=%s err=%v", tripID, err)
		return
	}
	defer conn.Close()

	// Reads only surface disconnects; clients never send payloads.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				conn.Close()
				return
			}
		}
	}()

	for u := range trip.Updates() {
		msg := dto.TripUpdate{
			TripID:       u.TripID,
			Position:     dto.Point{Lat: u.Position.Lat, Lng: u.Position.Lng},
			SegmentIndex: u.SegmentIndex,
			RemainingKm:  u.RemainingKm,
			EtaMinutes:   u.EtaMinutes,
			State:        u.State.String(),
		}
		if err := conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// End cancels the identified trip.
func (h *TripHandler) End(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")
	if !h.Session.EndTrip(tripID) {
		writeError(w, r, http.StatusNotFound, "no such trip")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"ended": true})
}

// MapLayout returns the tracking map's tile grid and marker positions for the
// identified trip.
func (h *TripHandler) MapLayout(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")
	tiles, markers, ok := h.Session.MapLayout(tripID)
	if !ok {
		writeError(w, r, http.StatusNotFound, "no such trip")
		return
	}

	res := dto.TripMapResponse{
		Tiles:   make([]dto.TileInfo, 0, len(tiles)),
		Markers: make([]dto.MarkerInfo, 0, len(markers)),
	}
	for _, t := range tiles {
		res.Tiles = append(res.Tiles, dto.TileInfo{
			Zoom: t.Zoom, X: t.X, Y: t.Y, LeftPx: t.LeftPx, TopPx: t.TopPx,
		})
	}
	for _, m := range markers {
		res.Markers = append(res.Markers, dto.MarkerInfo{
			ID: m.ID, Label: m.Label, Lat: m.Position.Lat, Lng: m.Position.Lng,
			LeftPx: m.LeftPx, TopPx: m.TopPx,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}
