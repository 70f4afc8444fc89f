package fairrand

import "errors"

var (
	// ErrInvalidRange is returned when a range below 1 is requested.
	ErrInvalidRange = errors.New("invalid range")
	// ErrOutOfRangeInput is returned when the counterpart input is outside [0, N).
	ErrOutOfRangeInput = errors.New("counterpart input out of range")
	// ErrIntegrityViolation is returned when a disclosed key and value do not
	// reproduce the published digest.
	ErrIntegrityViolation = errors.New("integrity violation")
	// ErrSessionConsumed is returned when a session is used a second time.
	ErrSessionConsumed = errors.New("session already consumed")
)
