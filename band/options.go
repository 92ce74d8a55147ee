// Package band: functional configuration for model construction.
// Defaults describe the simplest usable model: a single conduction
// subband at the gap edge, two degenerate valence subbands at zero, and a
// freshly built GaAs descriptor. Each construction resolves its own
// defaults — no default instance is ever shared between models.
package band

import "github.com/qoptica/parabands/material"

// Option mutates construction options. The last writer wins.
type Option func(*options)

// options stores the effective configuration after applying Option
// setters. Unexported: public constructors accept ...Option.
type options struct {
	mat    *material.Material
	edgesC []float64
	edgesV []float64
	mv     float64 // quantum-well effective valence mass; 0 ⇒ material heavy-hole
}

// WithMaterial sets the material descriptor the model reads its
// parameters from. The descriptor is referenced, not copied; it must not
// be mutated for the model's lifetime (Material is immutable by
// construction, so sharing one across models is safe).
func WithMaterial(mat *material.Material) Option {
	if mat == nil {
		panic("band: WithMaterial: material must be non-nil")
	}

	return func(o *options) { o.mat = mat }
}

// WithConductionEdges sets the conduction subband edge energies (J),
// expressed relative to the band gap: the model offsets every edge by the
// material's temperature-corrected Eg at construction.
func WithConductionEdges(edges []float64) Option {
	return func(o *options) { o.edgesC = edges }
}

// WithValenceEdges sets the valence subband edge energies (J) on the
// absolute scale (valence band top at zero).
func WithValenceEdges(edges []float64) Option {
	return func(o *options) { o.edgesV = edges }
}

// WithValenceMass sets the single effective valence mass (kg) of a
// quantum-well model. Ignored by Bulk, which selects per-subband masses
// from the material. Zero or negative masses are a programmer error.
func WithValenceMass(mass float64) Option {
	if mass <= 0 {
		panic("band: WithValenceMass: mass must be positive")
	}

	return func(o *options) { o.mv = mass }
}

// gatherOptions resolves defaults and applies the supplied setters. Edge
// slices are copied so later caller mutation cannot alias model state.
func gatherOptions(opts ...Option) (options, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.mat == nil {
		mat, err := material.NewGaAs()
		if err != nil {
			return options{}, err
		}
		o.mat = mat
	}
	if o.edgesC == nil {
		o.edgesC = []float64{0}
	}
	if o.edgesV == nil {
		o.edgesV = []float64{0, 0}
	}
	if len(o.edgesC) == 0 || len(o.edgesV) == 0 {
		return options{}, ErrNoEdges
	}

	o.edgesC = append([]float64(nil), o.edgesC...)
	o.edgesV = append([]float64(nil), o.edgesV...)

	return o, nil
}
