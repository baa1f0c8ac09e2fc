package services

import (
	"sort"

	"arogya-dispatch-service/internal/domain"
)

// BuildQuotes filters the roster by the requested service class and computes a
// quote per surviving vehicle: distance to pickup, trip distance, ETA to
// pickup at the vehicle's speed, and the trip fare.
//
// Results are sorted by ascending distance to pickup; ties keep roster order.
// An empty result is a normal outcome, not an error.
func BuildQuotes(roster []domain.Vehicle, class domain.ServiceClass, pickup, destination domain.GeoPoint) []domain.Quote {
	tripKm := domain.HaversineKm(pickup, destination)

	quotes := make([]domain.Quote, 0, len(roster))
	for _, v := range roster {
		if !v.Matches(class) {
			continue
		}
		pickupKm := domain.HaversineKm(v.Position, pickup)
		quotes = append(quotes, domain.Quote{
			Vehicle:            v,
			DistanceToPickupKm: pickupKm,
			TripDistanceKm:     tripKm,
			EtaToPickupMin:     EstimateEtaMinutes(pickupKm, v.SpeedKmph),
			FareEstimate:       EstimateFare(tripKm, v),
			Pickup:             pickup,
			Destination:        destination,
		})
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].DistanceToPickupKm < quotes[j].DistanceToPickupKm
	})

	return quotes
}
