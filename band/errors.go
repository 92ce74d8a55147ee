package band

import "errors"

var (
	// ErrBandIndex indicates a subband index at or beyond the number of
	// declared edges for that carrier type.
	ErrBandIndex = errors.New("band: subband index exceeds maximal value")

	// ErrValenceCount indicates a bulk model was configured with more than
	// the three supported valence bands (heavy-hole, light-hole, split-off).
	ErrValenceCount = errors.New("band: bulk models support at most three valence bands")

	// ErrNoEdges indicates an empty subband edge sequence.
	ErrNoEdges = errors.New("band: at least one subband edge is required")

	// ErrNonPositiveTemperature indicates T ≤ 0 (or NaN) was passed to a
	// Fermi-statistics operation; the occupation function is singular there.
	ErrNonPositiveTemperature = errors.New("band: temperature must be strictly positive")

	// ErrDegenerateGrid indicates the integrated density samples collapsed
	// to fewer than two distinct values, so the density→Fermi-level map
	// cannot be inverted at this temperature.
	ErrDegenerateGrid = errors.New("band: density grid is degenerate; cannot invert Fermi level")
)
