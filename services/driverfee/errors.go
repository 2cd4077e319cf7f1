package driverfee

import "errors"

var (
	// ErrTransitNotFound is returned when the transit id does not exist
	ErrTransitNotFound = errors.New("transit does not exist")
	// ErrFeeNotDefined is returned when the driver has no fee policy configured
	ErrFeeNotDefined = errors.New("driver fees not defined for driver")
)
