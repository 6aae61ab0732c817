package domain

import "errors"

var (
	// ErrInvalidArgument indicates a caller broke a precondition, such as a
	// day index outside the snapshot's year.
	ErrInvalidArgument = errors.New("invalid argument")
)
