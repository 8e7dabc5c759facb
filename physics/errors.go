package physics

import "errors"

var (
	// ErrNonPositiveMass rejects a body whose mass is zero, negative or NaN
	ErrNonPositiveMass = errors.New("mass must be positive")

	// ErrCoincidentBodies is returned when two bodies share a position and no minimum distance is set
	ErrCoincidentBodies = errors.New("coincident bodies")
)
