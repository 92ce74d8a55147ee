package band

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/qoptica/parabands/material"
	"github.com/qoptica/parabands/physconst"
)

// Bulk is the 3-dimensional parabolic band-structure model: one
// conduction band and up to three valence bands — heavy-hole (0),
// light-hole (1) and split-off (2), each with its own effective mass
// from the material descriptor.
//
// A Bulk is bound to one parameter configuration for its lifetime; build
// a new instance for a different material or edge set.
type Bulk struct {
	mat    *material.Material
	edgesC []float64 // conduction edges offset by Eg (J)
	edgesV []float64 // valence edges, absolute scale (J)

	fermi *fermiSolver
}

// NewBulk builds a bulk model. Conduction edges are stored offset by the
// material's temperature-corrected gap, so a zero edge sits exactly at
// Eg. ErrValenceCount when more than three valence edges are declared,
// ErrNoEdges on an empty edge sequence.
func NewBulk(opts ...Option) (*Bulk, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if len(o.edgesV) > 3 {
		return nil, ErrValenceCount
	}

	for i := range o.edgesC {
		o.edgesC[i] += o.mat.Eg
	}

	b := &Bulk{mat: o.mat, edgesC: o.edgesC, edgesV: o.edgesV}
	b.fermi = newFermiSolver(b.mat.Eg, b.edgesC, b.edgesV, b.DOS)

	return b, nil
}

// Dim reports the spatial dimensionality, 3.
func (b *Bulk) Dim() int { return 3 }

// ConductionEnergy returns edge_j + ħ²k²/(2·me) on the momentum grid k.
func (b *Bulk) ConductionEnergy(j int, k []float64) ([]float64, error) {
	if j < 0 || j >= len(b.edgesC) {
		return nil, ErrBandIndex
	}

	return dispersion(b.edgesC[j], physconst.Hbar*physconst.Hbar/(2*b.mat.Me), k), nil
}

// ValenceEnergy returns edge_j − ħ²k²/(2·m_j) with the heavy-hole,
// light-hole or split-off mass selected by j.
func (b *Bulk) ValenceEnergy(j int, k []float64) ([]float64, error) {
	if j < 0 || j >= len(b.edgesV) {
		return nil, ErrBandIndex
	}
	mass, err := b.mat.ValenceMass(j)
	if err != nil {
		return nil, ErrBandIndex
	}

	return dispersion(b.edgesV[j], -physconst.Hbar*physconst.Hbar/(2*mass), k), nil
}

// Dipole returns the two-band interband dipole matrix element between
// valence subband jv and conduction subband jc:
//
//	p = √(e·eP·ħ²/(2·m0)),  d(k) = p·Eg/(Ec(k) − Ev(k))
//
// with eP the material's Kane energy. At k = 0 for aligned edges this
// reduces to p itself.
func (b *Bulk) Dipole(jv, jc int, k []float64) ([]float64, error) {
	ev, err := b.ValenceEnergy(jv, k)
	if err != nil {
		return nil, err
	}
	ec, err := b.ConductionEnergy(jc, k)
	if err != nil {
		return nil, err
	}

	p := math.Sqrt(physconst.E * b.mat.EP * physconst.Hbar / physconst.M0 * physconst.Hbar / 2)
	d := make([]float64, len(k))
	for i := range k {
		d[i] = p * b.mat.Eg / (ec[i] - ev[i])
	}

	return d, nil
}

// OpticalTransition bundles momentum grid, valence energy, conduction
// energy and dipole for the (jv, jc) subband pair.
func (b *Bulk) OpticalTransition(k []float64, jv, jc int) (Transition, error) {
	return opticalTransition(b, k, jv, jc)
}

// DOS sums the parabolic subband density of states over all conduction
// subbands (Electrons, electron mass) or all valence subbands (any other
// carrier, per-subband hole masses). energy is in eV; see package doc.
func (b *Bulk) DOS(energy []float64, carriers Carrier) []float64 {
	dos := make([]float64, len(energy))
	shifted := make([]float64, len(energy))

	if carriers == Electrons {
		for j := range b.edgesC {
			copy(shifted, energy)
			floats.AddConst(-b.edgesC[j]/physconst.E, shifted)
			floats.Add(dos, SubbandDOS(shifted, b.mat.Me, 3))
		}

		return dos
	}

	for j := range b.edgesV {
		mass, err := b.mat.ValenceMass(j)
		if err != nil {
			// unreachable: NewBulk caps the valence edge count at three
			continue
		}
		copy(shifted, energy)
		floats.AddConst(b.edgesV[j]/physconst.E, shifted)
		floats.Add(dos, SubbandDOS(shifted, mass, 3))
	}

	return dos
}

// FermiLevels returns (hole Ef, electron Ef) in Joules on the absolute
// scale. The per-temperature solve is cached; see package doc.
func (b *Bulk) FermiLevels(tempr, dens float64) (float64, float64, error) {
	return b.fermi.levels(tempr, dens)
}

// dispersion evaluates edge + curv·k² over a momentum grid.
func dispersion(edge, curv float64, k []float64) []float64 {
	out := make([]float64, len(k))
	for i, kk := range k {
		out[i] = edge + curv*kk*kk
	}

	return out
}

// opticalTransition is the shared read-only bundle projection.
func opticalTransition(bs BandStructure, k []float64, jv, jc int) (Transition, error) {
	ev, err := bs.ValenceEnergy(jv, k)
	if err != nil {
		return Transition{}, err
	}
	ec, err := bs.ConductionEnergy(jc, k)
	if err != nil {
		return Transition{}, err
	}
	d, err := bs.Dipole(jv, jc, k)
	if err != nil {
		return Transition{}, err
	}

	return Transition{K: k, Valence: ev, Conduction: ec, Dipole: d}, nil
}
