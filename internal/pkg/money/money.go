package money

import "fmt"

// minorUnitFactor converts a major currency amount to minor units (cents)
const minorUnitFactor = 100

// Money is an immutable currency amount stored as an integer number of
// minor units. All arithmetic stays on the integer representation so
// repeated fee calculations never accumulate floating-point drift.
type Money struct {
	value int64
}

// Zero is the additive identity
var Zero = Money{}

// New creates a Money from an amount already expressed in minor units
func New(minor int64) Money {
	return Money{value: minor}
}

// FromMajor creates a Money from a whole major-unit amount
func FromMajor(major int64) Money {
	return Money{value: major * minorUnitFactor}
}

// ToInt returns the raw minor-unit integer, used wherever a persisted or
// transported numeric amount is required
func (m Money) ToInt() int64 {
	return m.value
}

// Add returns m + other
func (m Money) Add(other Money) Money {
	return Money{value: m.value + other.value}
}

// Sub returns m - other
func (m Money) Sub(other Money) Money {
	return Money{value: m.value - other.value}
}

// Mul returns m scaled by an integer factor
func (m Money) Mul(factor int64) Money {
	return Money{value: m.value * factor}
}

// Div returns m divided by an integer, truncating toward zero
func (m Money) Div(divisor int64) Money {
	return Money{value: m.value / divisor}
}

// Cmp compares two amounts, returning -1, 0 or 1
func (m Money) Cmp(other Money) int {
	switch {
	case m.value < other.value:
		return -1
	case m.value > other.value:
		return 1
	default:
		return 0
	}
}

// GreaterThan reports whether m is strictly larger than other
func (m Money) GreaterThan(other Money) bool {
	return m.value > other.value
}

// LessThan reports whether m is strictly smaller than other
func (m Money) LessThan(other Money) bool {
	return m.value < other.value
}

// Max returns the larger of two amounts
func Max(a, b Money) Money {
	if a.value >= b.value {
		return a
	}
	return b
}

// String renders the amount in major units with two decimals, e.g. "12.50"
func (m Money) String() string {
	major := m.value / minorUnitFactor
	minor := m.value % minorUnitFactor
	if minor < 0 {
		minor = -minor
	}
	return fmt.Sprintf("%d.%02d", major, minor)
}
