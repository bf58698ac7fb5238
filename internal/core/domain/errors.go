package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownLane indicates a lane id outside the lane catalog.
	ErrUnknownLane = errors.New("unknown lane")

	// ErrEmptyCatalog indicates a values catalog with no entries.
	ErrEmptyCatalog = errors.New("values catalog is empty")

	// ErrInvalidSetting indicates an unknown settings key or a bad value.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrUnsupportedFormat indicates an unknown snapshot format.
	ErrUnsupportedFormat = errors.New("unsupported snapshot format")

	// ErrMalformedSnapshot indicates tabular text with broken quoting.
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)
