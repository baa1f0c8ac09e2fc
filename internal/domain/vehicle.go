package domain

// ServiceClass is the ambulance service category a vehicle provides.
type ServiceClass string

const (
	// ClassBLS is basic life support.
	ClassBLS ServiceClass = "BLS"
	// ClassALS is advanced life support.
	ClassALS ServiceClass = "ALS"
	// ClassMortuary is a mortuary van.
	ClassMortuary ServiceClass = "Mortuary"
	// ClassAny matches any emergency class (BLS or ALS, not Mortuary).
	ClassAny ServiceClass = "Any"
)

// Valid reports whether c is a class a booking request may ask for.
func (c ServiceClass) Valid() bool {
	switch c {
	case ClassBLS, ClassALS, ClassMortuary, ClassAny:
		return true
	}
	return false
}

// Vehicle is a unit of the static ambulance roster.
type Vehicle struct {
	ID        string       `json:"id"`
	Class     ServiceClass `json:"class"`
	Position  GeoPoint     `json:"position"`
	BaseFare  int          `json:"base_fare"`
	PerKmRate float64      `json:"per_km_rate"`
	SpeedKmph float64      `json:"speed_kmph"`
}

// Matches reports whether the vehicle satisfies the requested service class.
// ClassAny means any emergency vehicle, so BLS or ALS.
func (v Vehicle) Matches(req ServiceClass) bool {
	if req == ClassAny {
		return v.Class == ClassBLS || v.Class == ClassALS
	}
	return v.Class == req
}
