package domain

// Facility is a hospital/clinic destination entry in the reference dataset.
// Name is the unique lookup key; Aliases hold common abbreviations.
type Facility struct {
	Name       string   `json:"name"`
	Category   string   `json:"type"`
	Area       string   `json:"area"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	Aliases    []string `json:"alt,omitempty"`
	Popularity int      `json:"pop"`
}

// Position returns the facility location as a GeoPoint.
func (f Facility) Position() GeoPoint {
	return GeoPoint{Lat: f.Lat, Lng: f.Lng}
}
