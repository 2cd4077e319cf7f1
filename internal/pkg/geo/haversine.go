package geo

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// Earth's mean radius in kilometers
const earthRadiusKm = 6371.0

// GeohashPrecision is the number of geohash characters stored alongside
// position samples, roughly a 5m x 5m cell.
const GeohashPrecision = 9

// GreatCircleDistance calculates the shortest surface distance in kilometers
// between two coordinates given in decimal degrees, using the Haversine formula
func GreatCircleDistance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)
	deltaLat := toRadians(lat2 - lat1)
	deltaLon := toRadians(lon2 - lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// EncodePosition converts a coordinate pair to a geohash string
func EncodePosition(latitude, longitude float64) string {
	return geohash.EncodeWithPrecision(latitude, longitude, GeohashPrecision)
}

// DecodePosition converts a geohash string back to a coordinate pair
func DecodePosition(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
