package material

import (
	"math"

	"github.com/qoptica/parabands/physconst"
)

// Params is the nominal (0 K) parameter table of one semiconductor, the
// wire format of the external material database this package consumes.
// Energies are in Joules unless noted, masses in kg.
type Params struct {
	Eg  float64 // nominal band gap (J)
	Eso float64 // spin-orbit split-off valence band offset (J), ≤ 0

	// Luttinger parameters; informational once the masses are fixed.
	Gamma1, Gamma2, Gamma3 float64

	Me  float64 // conduction (electron) effective mass
	Mhh float64 // heavy-hole effective mass
	Mlh float64 // light-hole effective mass
	Mso float64 // split-off effective mass

	Eps   float64 // static relative permittivity
	NRefr float64 // refractive index
	EP    float64 // Kane momentum matrix energy (eV)

	Alpha float64 // Varshni α (meV/K)
	Beta  float64 // Varshni β (K)

	Coupling     float64 // O'Donnell–Chen coupling S (dimensionless)
	PhononEnergy float64 // O'Donnell–Chen phonon energy ħω (meV)
}

// GaAsParams returns the GaAs table of
// [I. Vurgaftman, J. R. Meyer, and L. R. Ram-Mohan, J. Appl. Phys. 89 (11), 2001].
// Heavy- and light-hole masses follow the spherical Luttinger combination
// m0/(γ1 ∓ 2γ̄) with γ̄ = (γ2+γ2)/2.
func GaAsParams() Params {
	const (
		gamma1 = 6.98
		gamma2 = 2.06
		gamma3 = 2.93
	)
	gamma := 0.5 * (gamma2 + gamma2)

	return Params{
		Eg:  1.519 * physconst.E,
		Eso: -0.341 * physconst.E,

		Gamma1: gamma1,
		Gamma2: gamma2,
		Gamma3: gamma3,

		Me:  0.0665 * physconst.M0,
		Mhh: physconst.M0 / (gamma1 - 2*gamma),
		Mlh: physconst.M0 / (gamma1 + 2*gamma),
		Mso: 0.172 * physconst.M0,

		Eps:   12.93,
		NRefr: 3.61,
		EP:    28.8,

		Alpha: 0.605,
		Beta:  204,

		Coupling:     3.0,
		PhononEnergy: 26.7,
	}
}

// TwoBandModelParams returns a symmetric two-band model crystal: one
// conduction and one valence band with equal masses 2·m0. Useful for
// quantum-well models, which carry a single effective valence mass; all
// three valence-mass slots hold the same value.
func TwoBandModelParams() Params {
	return Params{
		Eg: 1.519 * physconst.E,

		Me:  2 * physconst.M0,
		Mhh: 2 * physconst.M0,
		Mlh: 2 * physconst.M0,
		Mso: 2 * physconst.M0,

		Eps:   24.93,
		NRefr: 3.61,
	}
}

// Material is an immutable descriptor of one semiconductor at one
// temperature. All fields are read-only after New returns; a Material may
// be shared by any number of band-structure models.
type Material struct {
	Eg  float64 // band gap at the construction temperature (J)
	Eso float64 // spin-orbit split-off offset (J)

	Me  float64 // conduction effective mass (kg)
	Mhh float64 // heavy-hole effective mass (kg)
	Mlh float64 // light-hole effective mass (kg)
	Mso float64 // split-off effective mass (kg)

	Eps   float64 // static relative permittivity
	NRefr float64 // refractive index
	EP    float64 // Kane momentum matrix energy (eV)

	// Derived exciton scaling constants, fixed at construction:
	// Mr is the reduced electron/heavy-hole mass, A0 the effective exciton
	// Bohr radius (m), E0 the exciton binding-energy scale in effective
	// Rydberg units.
	Mr float64
	A0 float64
	E0 float64

	Tempr float64  // construction temperature (K)
	Model GapModel // gap model applied at construction
}

// New builds a Material from a nominal parameter table, applying the
// selected gap model at the configured temperature.
//
// Returns ErrBadTemperature for a NaN temperature, and
// ErrNonPositiveTemperature when PhononCoupling is selected with T ≤ 0
// (the coth form is singular there).
func New(p Params, opts ...Option) (*Material, error) {
	o := gatherOptions(opts...)
	if math.IsNaN(o.tempr) {
		return nil, ErrBadTemperature
	}

	eg := p.Eg
	switch o.model {
	case Varshni:
		eg -= physconst.E * 0.001 * p.Alpha * o.tempr * o.tempr / (o.tempr + p.Beta)
	case PhononCoupling:
		if o.tempr <= 0 {
			return nil, ErrNonPositiveTemperature
		}
		phonon := p.PhononEnergy * physconst.E * 0.001
		eg -= physconst.E * 0.001 * p.PhononEnergy * p.Coupling *
			(1.0/math.Tanh(phonon/(2*physconst.Kb*o.tempr)) - 1.0)
	}

	m := &Material{
		Eg:  eg,
		Eso: p.Eso,

		Me:  p.Me,
		Mhh: p.Mhh,
		Mlh: p.Mlh,
		Mso: p.Mso,

		Eps:   p.Eps,
		NRefr: p.NRefr,
		EP:    p.EP,

		Tempr: o.tempr,
		Model: o.model,
	}

	// Exciton scaling constants. The expression shapes are fixed: a0 is
	// 4π·ε0·ε·ħ²/(mr·e²) evaluated in exactly this operation order, so
	// downstream consumers reproduce the values bit-for-bit.
	m.Mr = m.Me / (m.Mhh + m.Me) * m.Mhh
	m.A0 = physconst.Hbar / physconst.E * physconst.Eps0 * m.Eps *
		physconst.Hbar / physconst.E / m.Mr * 4 * physconst.Pi
	m.E0 = (physconst.E / physconst.Eps0 / m.Eps) *
		(physconst.E / (2 * m.A0)) / physconst.ERy

	return m, nil
}

// NewGaAs builds a GaAs descriptor; shorthand for New(GaAsParams(), opts...).
func NewGaAs(opts ...Option) (*Material, error) {
	return New(GaAsParams(), opts...)
}

// ValenceMass returns the effective mass of valence band j: 0 heavy-hole,
// 1 light-hole, 2 split-off. Any other index is ErrValenceIndex.
func (m *Material) ValenceMass(j int) (float64, error) {
	switch j {
	case 0:
		return m.Mhh, nil
	case 1:
		return m.Mlh, nil
	case 2:
		return m.Mso, nil
	default:
		return 0, ErrValenceIndex
	}
}
