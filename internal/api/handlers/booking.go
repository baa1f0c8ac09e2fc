package handlers

import (
	"math/rand"
	"net/http"
	"regexp"
	"strings"

	"arogya-dispatch-service/internal/api/dto"
	"arogya-dispatch-service/internal/domain"
	"arogya-dispatch-service/internal/ports"
	"arogya-dispatch-service/internal/services"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// BookingHandler computes fleet quotes for a booking request.
type BookingHandler struct {
	Facilities []domain.Facility
	Roster     []domain.Vehicle
	Geocoder   ports.Geocoder
}

// Quotes validates the booking request, resolves the destination, and returns
// per-vehicle quotes sorted nearest-first. An empty quote list is a normal
// outcome when no vehicle matches the requested class.
func (h *BookingHandler) Quotes(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Pickup == nil {
		writeError(w, r, http.StatusBadRequest, "pickup location is required")
		return
	}
	pickup := domain.GeoPoint{Lat: req.Pickup.Lat, Lng: req.Pickup.Lng}

	class := domain.ServiceClass(req.ServiceClass)
	if class == "" {
		class = domain.ClassAny
	}
	if !class.Valid() {
		writeError(w, r, http.StatusBadRequest, "unknown service class")
		return
	}

	destText := strings.TrimSpace(req.DestinationText)
	if class != domain.ClassMortuary && destText == "" && req.Destination == nil {
		writeError(w, r, http.StatusBadRequest, "destination is required")
		return
	}

	if !phonePattern.MatchString(req.Phone) {
		writeError(w, r, http.StatusBadRequest, "contact number must be 10 digits")
		return
	}

	dest := h.resolveDestination(r, class, pickup, destText, req.Destination)

	quotes := services.BuildQuotes(h.Roster, class, pickup, dest)

	res := dto.ListQuotesResponse{Quotes: make([]dto.QuoteResponse, 0, len(quotes)), Count: len(quotes)}
	for _, q := range quotes {
		res.Quotes = append(res.Quotes, dto.QuoteResponse{
			VehicleID:          q.Vehicle.ID,
			ServiceClass:       string(q.Vehicle.Class),
			DistanceToPickupKm: q.DistanceToPickupKm,
			TripDistanceKm:     q.TripDistanceKm,
			EtaToPickupMin:     q.EtaToPickupMin,
			FareEstimate:       q.FareEstimate,
			Destination:        dto.Point{Lat: q.Destination.Lat, Lng: q.Destination.Lng},
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// resolveDestination applies the booking destination rules: explicit selection
// wins, then a facility named in the text, then a forward geocode; mortuary
// bookings with nothing else use the pickup as destination baseline. The
// final fallback jitters around the pickup so the demo still produces a trip
// when every collaborator is down.
func (h *BookingHandler) resolveDestination(
	r *http.Request,
	class domain.ServiceClass,
	pickup domain.GeoPoint,
	destText string,
	explicit *dto.Point,
) domain.GeoPoint {
	if explicit != nil {
		return domain.GeoPoint{Lat: explicit.Lat, Lng: explicit.Lng}
	}

	if class == domain.ClassMortuary && destText == "" {
		return pickup
	}

	if f, ok := services.FindFacilityByText(h.Facilities, destText); ok {
		return f.Position()
	}

	if h.Geocoder != nil {
		if p, ok, err := h.Geocoder.Forward(r.Context(), destText); err == nil && ok {
			return p
		}
	}

	return jitter(pickup, 0.01)
}

func jitter(center domain.GeoPoint, magnitude float64) domain.GeoPoint {
	return domain.GeoPoint{
		Lat: center.Lat + (rand.Float64()-0.5)*magnitude,
		Lng: center.Lng + (rand.Float64()-0.5)*magnitude,
	}
}
