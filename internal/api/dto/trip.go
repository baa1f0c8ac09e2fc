package dto

// TripRequest books a quoted vehicle and starts the simulated trip.
type TripRequest struct {
	VehicleID   string `json:"vehicle_id"`
	Pickup      *Point `json:"pickup"`
	Destination *Point `json:"destination"`
}

type TripResponse struct {
	TripID         string  `json:"trip_id"`
	VehicleID      string  `json:"vehicle_id"`
	ServiceClass   string  `json:"service_class"`
	Registration   string  `json:"registration"`
	DriverName     string  `json:"driver_name"`
	DriverPhone    string  `json:"driver_phone"`
	TripDistanceKm float64 `json:"trip_distance_km"`
	FareEstimate   int     `json:"fare_estimate"`
}

// TripUpdate is one simulation tick on the live tracking feed.
type TripUpdate struct {
	TripID       string  `json:"trip_id"`
	Position     Point   `json:"position"`
	SegmentIndex int     `json:"segment_index"`
	RemainingKm  float64 `json:"remaining_km"`
	EtaMinutes   int     `json:"eta_minutes"`
	State        string  `json:"state"`
}

// TileInfo is one slippy tile of the tracking map layout.
type TileInfo struct {
	Zoom   int     `json:"zoom"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	LeftPx float64 `json:"left_px"`
	TopPx  float64 `json:"top_px"`
}

type MarkerInfo struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	LeftPx float64 `json:"left_px"`
	TopPx  float64 `json:"top_px"`
}

type TripMapResponse struct {
	Tiles   []TileInfo   `json:"tiles"`
	Markers []MarkerInfo `json:"markers"`
}
