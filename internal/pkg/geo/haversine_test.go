package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreatCircleDistance_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, GreatCircleDistance(53.32, -1.72, 53.32, -1.72))
}

func TestGreatCircleDistance_KnownLeg(t *testing.T) {
	// Sheffield-area reference leg used in travelled distance scenarios
	got := GreatCircleDistance(
		53.32055555555556, -1.7297222222222221,
		53.31861111111111, -1.6997222222222223,
	)

	assert.InDelta(t, 2.00437, got, 0.0001)
}

func TestGreatCircleDistance_Symmetric(t *testing.T) {
	a := GreatCircleDistance(53.32, -1.72, 52.52, 13.40)
	b := GreatCircleDistance(52.52, 13.40, 53.32, -1.72)

	assert.InDelta(t, a, b, 1e-9)
}

func TestEncodePosition(t *testing.T) {
	hash := EncodePosition(53.32055555555556, -1.7297222222222221)

	assert.Len(t, hash, GeohashPrecision)

	lat, lng := DecodePosition(hash)
	assert.InDelta(t, 53.32055555555556, lat, 0.001)
	assert.InDelta(t, -1.7297222222222221, lng, 0.001)
}
