package domain

// Quote is a computed candidate offer for a booking request.
// Quotes are ephemeral; one is promoted to a trip when the user books.
type Quote struct {
	Vehicle            Vehicle
	DistanceToPickupKm float64
	TripDistanceKm     float64
	EtaToPickupMin     int
	FareEstimate       int
	Pickup             GeoPoint
	Destination        GeoPoint
}
