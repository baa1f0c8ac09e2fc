package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"arogya-dispatch-service/internal/api/dto"
	"arogya-dispatch-service/internal/domain"
	"arogya-dispatch-service/internal/ports"
)

// LocationHandler serves geocoding and approximate-location lookups.
type LocationHandler struct {
	Geocoder ports.Geocoder
	Locator  ports.ApproxLocator
}

// Approx returns an IP-derived coarse position, trying each provider in turn.
func (h *LocationHandler) Approx(w http.ResponseWriter, r *http.Request) {
	loc, err := h.Locator.Locate(r.Context())
	if err != nil {
		log.Printf("approx location failed: %v", err)
		writeError(w, r, http.StatusServiceUnavailable, "unable to determine location")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ApproxLocationResponse{
		Lat:    loc.Point.Lat,
		Lng:    loc.Point.Lng,
		Source: loc.Source,
	})
}

// Reverse resolves lat/lng query parameters to a display address, falling
// back to a formatted coordinate pair when the geocoder is unavailable.
func (h *LocationHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		writeError(w, r, http.StatusBadRequest, "lat and lng must be numeric")
		return
	}
	p := domain.GeoPoint{Lat: lat, Lng: lng}

	addr, err := h.Geocoder.Reverse(r.Context(), p)
	if err != nil {
		log.Printf("reverse geocode failed: %v", err)
		writeJSON(w, r, http.StatusOK, dto.ReverseGeocodeResponse{
			Address:  fmt.Sprintf("%.6f, %.6f", p.Lat, p.Lng),
			Fallback: true,
		})
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ReverseGeocodeResponse{Address: addr})
}

// Forward resolves the q query parameter to its best coordinate match.
func (h *LocationHandler) Forward(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, r, http.StatusBadRequest, "q is required")
		return
	}

	p, ok, err := h.Geocoder.Forward(r.Context(), q)
	if err != nil {
		log.Printf("forward geocode failed: %v", err)
		writeError(w, r, http.StatusServiceUnavailable, "geocoding unavailable")
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "no match")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ForwardGeocodeResponse{Lat: p.Lat, Lng: p.Lng})
}
