package awards

import "errors"

var (
	// ErrAccountNotFound is returned when the client has no awards account
	ErrAccountNotFound = errors.New("awards account not found")
	// ErrAccountExists is returned when registering a client twice
	ErrAccountExists = errors.New("awards account already exists")
)
