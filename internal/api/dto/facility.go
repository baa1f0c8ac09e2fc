package dto

type FacilitySuggestion struct {
	Name     string  `json:"name"`
	Category string  `json:"type"`
	Area     string  `json:"area"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	// DistanceKm is omitted when no pickup point accompanied the query.
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

type ListFacilitiesResponse struct {
	Facilities []FacilitySuggestion `json:"facilities"`
	Count      int                  `json:"count"`
}
