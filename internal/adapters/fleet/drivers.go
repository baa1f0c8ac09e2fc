package fleet

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Driver is a demo driver profile shown on the tracking view.
type Driver struct {
	Name  string
	Phone string
}

var driverProfiles = []Driver{
	{Name: "Rahul Sen", Phone: "9876543210"},
	{Name: "Priya Das", Phone: "9890012345"},
	{Name: "Amit Roy", Phone: "9123456789"},
	{Name: "Sneha Gupta", Phone: "9812345678"},
	{Name: "Arjun Kumar", Phone: "9911223344"},
}

// PickDriver returns a random demo driver profile.
func PickDriver() Driver {
	return driverProfiles[rand.Intn(len(driverProfiles))]
}

// VehicleRegistration derives a plausible WB registration number
// deterministically from a vehicle id.
func VehicleRegistration(id string) string {
	var numeric strings.Builder
	for _, r := range id {
		if r >= '0' && r <= '9' {
			numeric.WriteRune(r)
		}
	}

	digits, err := strconv.Atoi(numeric.String())
	if err != nil || digits == 0 {
		digits = rand.Intn(10000)
	}

	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	district := fmt.Sprintf("%02d", digits%99)
	a1 := letters[digits%26]
	a2 := letters[(digits*7)%26]
	serial := fmt.Sprintf("%04d", (digits*13)%9999)

	return fmt.Sprintf("WB %s%c%c %s", district, a1, a2, serial)
}
