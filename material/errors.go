package material

import "errors"

var (
	// ErrBadTemperature indicates the supplied temperature is not a number.
	ErrBadTemperature = errors.New("material: temperature must be a finite number")

	// ErrNonPositiveTemperature indicates T ≤ 0 was supplied to a gap model
	// that is singular at zero temperature (PhononCoupling).
	ErrNonPositiveTemperature = errors.New("material: temperature must be strictly positive for this gap model")

	// ErrValenceIndex indicates a valence band index outside {0, 1, 2}.
	ErrValenceIndex = errors.New("material: valence band index out of range")
)
