// Package material: functional configuration for descriptor construction.
// This file defines the GapModel selector, the documented defaults, the
// Option setters and the internal option-gathering helper.
package material

// GapModel selects the empirical temperature dependence applied to the
// band gap at construction time.
type GapModel int

const (
	// NominalGap applies no temperature correction: Eg stays at its 0 K value.
	// This is the fallback for any unrecognized selector in the legacy table
	// formats and the default here.
	NominalGap GapModel = iota

	// Varshni applies Eg(T) = Eg(0) − α·T²/(T+β) with the material's
	// empirical α (meV/K) and β (K).
	Varshni

	// PhononCoupling applies the O'Donnell–Chen form
	// Eg(T) = Eg(0) − S·ħω·(coth(ħω/(2·kB·T)) − 1) with the material's
	// coupling S and phonon energy ħω (meV). Singular at T ≤ 0.
	PhononCoupling
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultTemperature is the construction temperature when
	// WithTemperature is not supplied: nominal 0 K parameters.
	DefaultTemperature = 0.0
)

// Option mutates construction options. Safe to apply repeatedly; the last
// writer wins.
type Option func(*options)

// options stores the effective configuration after applying Option
// setters. Unexported: public entry points accept ...Option.
type options struct {
	tempr float64
	model GapModel
}

// WithTemperature sets the lattice temperature in Kelvin at which the
// descriptor is built. NaN is rejected by New with ErrBadTemperature.
func WithTemperature(tempr float64) Option {
	return func(o *options) { o.tempr = tempr }
}

// WithGapModel selects the temperature-dependence model for the band gap.
func WithGapModel(model GapModel) Option {
	return func(o *options) { o.model = model }
}

// gatherOptions resolves defaults and applies the supplied setters.
func gatherOptions(opts ...Option) options {
	o := options{tempr: DefaultTemperature, model: NominalGap}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
