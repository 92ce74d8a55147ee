// Package parabands computes equilibrium electronic properties of
// semiconductor crystals and quantum-confined structures in the
// parabolic-band approximation: band energies versus momentum, densities
// of states, interband dipole matrix elements, and quasi-Fermi levels as
// functions of temperature and carrier density.
//
// 🚀 What is parabands?
//
//	A small, deterministic numerical library for simulation pipelines that
//	need material-parameter-driven band-structure data without solving a
//	full k·p or ab-initio problem:
//		• Material descriptors: temperature-corrected gaps (Varshni and
//		  O'Donnell–Chen phonon-coupling models), effective masses,
//		  exciton scaling constants
//		• Bulk (3-D) band structure: one conduction band, heavy-hole /
//		  light-hole / split-off valence bands
//		• Quantum-well (2-D) band structure: confined subbands, unity
//		  dipole in the strong-confinement limit
//		• Dimension-generic parabolic density of states (1-D/2-D/3-D)
//		• Fermi-level inversion: density → chemical potential via
//		  trapezoidal integration and monotone interpolation, memoized
//		  per temperature
//
// ✨ Why choose parabands?
//
//   - Deterministic – fixed grids, no adaptive quadrature, no randomness
//   - Explicit errors – sentinel errors, errors.Is friendly, no panics on
//     user input
//   - Pure Go numerics on gonum – no cgo, no hidden deps
//
// The module is organized in three packages:
//
//	physconst/ — process-wide read-only physical constants
//	material/  — semiconductor material descriptors and gap-shift models
//	band/      — band-structure models, DOS and Fermi–Dirac kernels,
//	             Fermi-level solver
//
// Quick sketch:
//
//	mat, _ := material.NewGaAs(material.WithTemperature(300),
//	    material.WithGapModel(material.Varshni))
//	bs, _ := band.NewBulk(band.WithMaterial(mat),
//	    band.WithConductionEdges([]float64{0}),
//	    band.WithValenceEdges([]float64{0, 0}))
//	efH, efE, _ := bs.FermiLevels(300, 1e16)
//
//	go get github.com/qoptica/parabands
package parabands
