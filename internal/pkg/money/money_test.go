package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	price := New(1000)

	assert.Equal(t, int64(800), price.Sub(New(200)).ToInt())
	assert.Equal(t, int64(1200), price.Add(New(200)).ToInt())
	assert.Equal(t, int64(100), price.Mul(10).Div(100).ToInt())
}

func TestDiv_TruncatesTowardZero(t *testing.T) {
	assert.Equal(t, int64(149), New(999).Mul(15).Div(100).ToInt())
	assert.Equal(t, int64(-149), New(-999).Mul(15).Div(100).ToInt())
}

func TestFromMajor(t *testing.T) {
	assert.Equal(t, int64(1250), FromMajor(12).Add(New(50)).ToInt())
}

func TestMax(t *testing.T) {
	assert.Equal(t, New(50), Max(New(-100), New(50)))
	assert.Equal(t, Zero, Max(New(-100), Zero))
	assert.Equal(t, New(800), Max(New(800), Zero))
}

func TestComparisons(t *testing.T) {
	assert.True(t, New(100).GreaterThan(New(50)))
	assert.True(t, New(50).LessThan(New(100)))
	assert.Equal(t, 0, New(100).Cmp(New(100)))
	assert.Equal(t, -1, New(50).Cmp(New(100)))
	assert.Equal(t, 1, New(100).Cmp(New(50)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "12.50", New(1250).String())
	assert.Equal(t, "0.05", New(5).String())
	assert.Equal(t, "-1.25", New(-125).String())
	assert.Equal(t, "0.00", Zero.String())
}
