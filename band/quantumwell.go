package band

import (
	"gonum.org/v1/gonum/floats"

	"github.com/qoptica/parabands/material"
	"github.com/qoptica/parabands/physconst"
)

// QuantumWell is the 2-dimensional band-structure model for confined
// carriers: each declared edge is one confined subband, all valence
// subbands share a single effective mass, and in the strong-confinement
// approximation the dipole matrix element is unity independent of k.
//
// Index-range contracts are identical to Bulk; the Fermi machinery is the
// same solver with dimension 2 threaded through the DOS.
type QuantumWell struct {
	mat    *material.Material
	mv     float64   // single effective valence mass (kg)
	edgesC []float64 // conduction edges offset by Eg (J)
	edgesV []float64

	fermi *fermiSolver
}

// NewQuantumWell builds a quantum-well model. The effective valence mass
// defaults to the material's heavy-hole mass; override it with
// WithValenceMass. ErrNoEdges on an empty edge sequence.
func NewQuantumWell(opts ...Option) (*QuantumWell, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if o.mv == 0 {
		o.mv = o.mat.Mhh
	}

	for i := range o.edgesC {
		o.edgesC[i] += o.mat.Eg
	}

	q := &QuantumWell{mat: o.mat, mv: o.mv, edgesC: o.edgesC, edgesV: o.edgesV}
	q.fermi = newFermiSolver(q.mat.Eg, q.edgesC, q.edgesV, q.DOS)

	return q, nil
}

// Dim reports the spatial dimensionality, 2.
func (q *QuantumWell) Dim() int { return 2 }

// ConductionEnergy returns edge_j + ħ²k²/(2·me) on the in-plane grid k.
func (q *QuantumWell) ConductionEnergy(j int, k []float64) ([]float64, error) {
	if j < 0 || j >= len(q.edgesC) {
		return nil, ErrBandIndex
	}

	return dispersion(q.edgesC[j], physconst.Hbar*physconst.Hbar/(2*q.mat.Me), k), nil
}

// ValenceEnergy returns edge_j − ħ²k²/(2·mv) with the well's single
// effective valence mass, for every valid subband index.
func (q *QuantumWell) ValenceEnergy(j int, k []float64) ([]float64, error) {
	if j < 0 || j >= len(q.edgesV) {
		return nil, ErrBandIndex
	}

	return dispersion(q.edgesV[j], -physconst.Hbar*physconst.Hbar/(2*q.mv), k), nil
}

// Dipole returns the strong-confinement matrix element: a ones vector of
// the same shape as k, after the usual index-range checks.
func (q *QuantumWell) Dipole(jv, jc int, k []float64) ([]float64, error) {
	if jv < 0 || jv >= len(q.edgesV) {
		return nil, ErrBandIndex
	}
	if jc < 0 || jc >= len(q.edgesC) {
		return nil, ErrBandIndex
	}

	d := make([]float64, len(k))
	for i := range d {
		d[i] = 1.0
	}

	return d, nil
}

// OpticalTransition bundles momentum grid, valence energy, conduction
// energy and dipole for the (jv, jc) subband pair.
func (q *QuantumWell) OpticalTransition(k []float64, jv, jc int) (Transition, error) {
	return opticalTransition(q, k, jv, jc)
}

// DOS sums the 2-D subband density of states over all conduction
// subbands (Electrons) or all valence subbands (any other carrier, single
// mass). energy is in eV; see package doc.
func (q *QuantumWell) DOS(energy []float64, carriers Carrier) []float64 {
	dos := make([]float64, len(energy))
	shifted := make([]float64, len(energy))

	if carriers == Electrons {
		for j := range q.edgesC {
			copy(shifted, energy)
			floats.AddConst(-q.edgesC[j]/physconst.E, shifted)
			floats.Add(dos, SubbandDOS(shifted, q.mat.Me, 2))
		}

		return dos
	}

	for j := range q.edgesV {
		copy(shifted, energy)
		floats.AddConst(q.edgesV[j]/physconst.E, shifted)
		floats.Add(dos, SubbandDOS(shifted, q.mv, 2))
	}

	return dos
}

// FermiLevels returns (hole Ef, electron Ef) in Joules on the absolute
// scale. The per-temperature solve is cached; see package doc.
func (q *QuantumWell) FermiLevels(tempr, dens float64) (float64, float64, error) {
	return q.fermi.levels(tempr, dens)
}
