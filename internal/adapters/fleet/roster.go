package fleet

import "arogya-dispatch-service/internal/domain"

// Roster returns the static ambulance fleet. Positions are notional starting
// points around Kolkata; the trip simulator moves a copy, never the roster.
func Roster() []domain.Vehicle {
	return []domain.Vehicle{
		{ID: "AMB-101", Class: domain.ClassBLS, Position: domain.GeoPoint{Lat: 22.5726, Lng: 88.3639}, BaseFare: 150, PerKmRate: 25, SpeedKmph: 40}, // Esplanade
		{ID: "AMB-245", Class: domain.ClassALS, Position: domain.GeoPoint{Lat: 22.5695, Lng: 88.4325}, BaseFare: 300, PerKmRate: 40, SpeedKmph: 50}, // Salt Lake
		{ID: "AMB-312", Class: domain.ClassBLS, Position: domain.GeoPoint{Lat: 22.5015, Lng: 88.3687}, BaseFare: 150, PerKmRate: 25, SpeedKmph: 42}, // Tollygunge
		{ID: "AMB-478", Class: domain.ClassALS, Position: domain.GeoPoint{Lat: 22.5200, Lng: 88.3870}, BaseFare: 300, PerKmRate: 40, SpeedKmph: 48}, // Alipore
		{ID: "MORT-21", Class: domain.ClassMortuary, Position: domain.GeoPoint{Lat: 22.5400, Lng: 88.3700}, BaseFare: 500, PerKmRate: 35, SpeedKmph: 35}, // Bhawanipur
	}
}

// FindVehicle looks up a roster vehicle by id.
func FindVehicle(id string) (domain.Vehicle, bool) {
	for _, v := range Roster() {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Vehicle{}, false
}
