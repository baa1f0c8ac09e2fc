package handlers

import (
	"net/http"
	"strconv"

	"arogya-dispatch-service/internal/api/dto"
	"arogya-dispatch-service/internal/domain"
	"arogya-dispatch-service/internal/services"
)

// FacilityHandler serves destination suggestions from the loaded dataset.
type FacilityHandler struct {
	Facilities []domain.Facility
}

// Suggest ranks facilities for the q query parameter. Optional lat/lng query
// parameters set the pickup point used for proximity ordering.
func (h *FacilityHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	var pickup *domain.GeoPoint
	latStr, lngStr := r.URL.Query().Get("lat"), r.URL.Query().Get("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			writeError(w, r, http.StatusBadRequest, "lat and lng must be numeric")
			return
		}
		pickup = &domain.GeoPoint{Lat: lat, Lng: lng}
	}

	suggestions := services.SuggestFacilities(h.Facilities, q, pickup)

	res := dto.ListFacilitiesResponse{
		Facilities: make([]dto.FacilitySuggestion, 0, len(suggestions)),
		Count:      len(suggestions),
	}
	for _, s := range suggestions {
		item := dto.FacilitySuggestion{
			Name:     s.Facility.Name,
			Category: s.Facility.Category,
			Area:     s.Facility.Area,
			Lat:      s.Facility.Lat,
			Lng:      s.Facility.Lng,
		}
		if pickup != nil {
			d := s.DistanceKm
			item.DistanceKm = &d
		}
		res.Facilities = append(res.Facilities, item)
	}

	writeJSON(w, r, http.StatusOK, res)
}
