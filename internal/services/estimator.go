package services

import (
	"math"

	"arogya-dispatch-service/internal/domain"
)

// EstimateFare returns the trip fare for a vehicle over the given distance,
// rounded to the nearest currency unit.
func EstimateFare(distanceKm float64, v domain.Vehicle) int {
	return int(math.Round(float64(v.BaseFare) + distanceKm*v.PerKmRate))
}

// EstimateEtaMinutes returns the travel time in whole minutes at the given
// average speed. The ceiling keeps the estimate from under-promising.
func EstimateEtaMinutes(distanceKm, speedKmph float64) int {
	return int(math.Ceil(distanceKm / speedKmph * 60))
}
