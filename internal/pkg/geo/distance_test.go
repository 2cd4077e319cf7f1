package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf_UnsupportedUnit(t *testing.T) {
	_, err := Of(10, "furlongs")
	assert.ErrorIs(t, err, ErrUnsupportedUnit)
}

func TestPrintIn_UnsupportedUnit(t *testing.T) {
	d := OfKm(10)
	_, err := d.PrintIn("furlongs")
	assert.ErrorIs(t, err, ErrUnsupportedUnit)
}

func TestPrintIn(t *testing.T) {
	cases := []struct {
		name      string
		magnitude float64
		unit      string
		printUnit string
		want      string
	}{
		{"whole km", 10, UnitKm, UnitKm, "10km"},
		{"fractional km", 10.123, UnitKm, UnitKm, "10.123km"},
		{"fractional km rounds to three decimals", 10.12345, UnitKm, UnitKm, "10.123km"},
		{"whole km as meters", 10, UnitKm, UnitM, "10000m"},
		{"fractional km as meters", 10.123, UnitKm, UnitM, "10123m"},
		{"long fraction as meters", 10.12345, UnitKm, UnitM, "10123m"},
		{"whole km as miles", 10, UnitKm, UnitMiles, "6.214miles"},
		{"fractional km as miles", 10.123, UnitKm, UnitMiles, "6.290miles"},
		{"long fraction as miles", 10.12345, UnitKm, UnitMiles, "6.290miles"},
		{"meters as km", 2500, UnitM, UnitKm, "2.500km"},
		{"miles round trip", 1, UnitMiles, UnitMiles, "1miles"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Of(tc.magnitude, tc.unit)
			require.NoError(t, err)

			got, err := d.PrintIn(tc.printUnit)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPrintIn_Zero(t *testing.T) {
	for _, unit := range []string{UnitKm, UnitM, UnitMiles} {
		d, err := Of(0, unit)
		require.NoError(t, err)

		for _, printUnit := range []string{UnitKm, UnitM, UnitMiles} {
			got, err := d.PrintIn(printUnit)
			require.NoError(t, err)
			assert.Equal(t, "0"+printUnit, got)
		}
	}
}

func TestAdd(t *testing.T) {
	a := OfKm(1.5)
	b := OfKm(2.5)

	got, err := a.Add(b).PrintIn(UnitKm)
	require.NoError(t, err)
	assert.Equal(t, "4km", got)
}

func TestComparisons(t *testing.T) {
	assert.True(t, OfKm(2).GreaterThan(OfKm(1)))
	assert.True(t, OfKm(1).LessThan(OfKm(2)))
	assert.False(t, OfKm(1).GreaterThan(OfKm(1)))
}
