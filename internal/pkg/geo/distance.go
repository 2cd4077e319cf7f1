package geo

import (
	"errors"
	"fmt"
	"math"
)

// Supported distance units
const (
	UnitKm    = "km"
	UnitM     = "m"
	UnitMiles = "miles"
)

const milesPerKm = 0.621371

// ErrUnsupportedUnit is returned when a distance unit is not one of km, m or miles
var ErrUnsupportedUnit = errors.New("unsupported distance unit")

// Distance is an immutable travelled-distance value, stored internally in kilometers
type Distance struct {
	km float64
}

// OfKm creates a Distance from a raw kilometer value
func OfKm(km float64) Distance {
	return Distance{km: km}
}

// Of creates a Distance from a magnitude expressed in the given unit
func Of(magnitude float64, unit string) (Distance, error) {
	switch unit {
	case UnitKm:
		return Distance{km: magnitude}, nil
	case UnitM:
		return Distance{km: magnitude / 1000}, nil
	case UnitMiles:
		return Distance{km: magnitude / milesPerKm}, nil
	default:
		return Distance{}, fmt.Errorf("%w: %q", ErrUnsupportedUnit, unit)
	}
}

// Km returns the distance in kilometers
func (d Distance) Km() float64 {
	return d.km
}

// Add returns the sum of two distances
func (d Distance) Add(other Distance) Distance {
	return Distance{km: d.km + other.km}
}

// GreaterThan reports whether d is strictly longer than other
func (d Distance) GreaterThan(other Distance) bool {
	return d.km > other.km
}

// LessThan reports whether d is strictly shorter than other
func (d Distance) LessThan(other Distance) bool {
	return d.km < other.km
}

// PrintIn renders the distance converted to the requested unit with a
// trailing unit suffix. Kilometers and miles are printed with 3 decimal
// places, collapsed to the bare integer when the converted value is whole
// ("10km", not "10.000km"). Meters are printed as a whole number rounded
// at the millimeter boundary.
func (d Distance) PrintIn(unit string) (string, error) {
	switch unit {
	case UnitKm:
		return formatScalar(d.km, UnitKm), nil
	case UnitM:
		return fmt.Sprintf("%d%s", int64(math.Round(d.km*1000)), UnitM), nil
	case UnitMiles:
		return formatScalar(d.km*milesPerKm, UnitMiles), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedUnit, unit)
	}
}

func formatScalar(value float64, suffix string) string {
	if value == math.Trunc(value) {
		return fmt.Sprintf("%d%s", int64(value), suffix)
	}
	return fmt.Sprintf("%.3f%s", value, suffix)
}
