package claims

import "errors"

var (
	// ErrClaimNotFound is returned when the claim id does not exist
	ErrClaimNotFound = errors.New("claim does not exist")
	// ErrClaimCompleted is returned when a lifecycle transition targets an
	// already completed claim
	ErrClaimCompleted = errors.New("claim already completed")
)
