package dto

// Point mirrors domain.GeoPoint on the wire.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// QuoteRequest asks for fleet quotes for a booking.
type QuoteRequest struct {
	Pickup          *Point `json:"pickup"`
	DestinationText string `json:"destination_text"`
	// Destination carries explicit coordinates when the caller already
	// selected a facility suggestion.
	Destination  *Point `json:"destination"`
	ServiceClass string `json:"service_class"`
	Phone        string `json:"phone"`
}

type QuoteResponse struct {
	VehicleID          string  `json:"vehicle_id"`
	ServiceClass       string  `json:"service_class"`
	DistanceToPickupKm float64 `json:"distance_to_pickup_km"`
	TripDistanceKm     float64 `json:"trip_distance_km"`
	EtaToPickupMin     int     `json:"eta_to_pickup_min"`
	FareEstimate       int     `json:"fare_estimate"`
	Destination        Point   `json:"destination"`
}

type ListQuotesResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Count  int             `json:"count"`
}
