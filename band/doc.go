// Package band implements parabolic band-structure models for bulk
// semiconductors and quantum wells: dispersion relations, interband
// dipole matrix elements, densities of states and quasi-Fermi-level
// solving.
//
// Two variants implement the BandStructure interface:
//
//   - Bulk — 3-D crystal with one conduction band and up to three
//     valence bands (heavy-hole, light-hole, split-off, indices 0/1/2).
//   - QuantumWell — 2-D confined carriers with a single effective
//     valence mass; the dipole matrix element collapses to unity in the
//     strong-confinement approximation.
//
// Both variants share the same Fermi-level machinery: for each distinct
// temperature queried, the solver probes a grid of candidate Fermi
// energies, integrates Fermi–Dirac occupation against the model's density
// of states by trapezoidal quadrature, and inverts the resulting monotone
// density map with a piecewise-linear interpolant (linearly extrapolated
// beyond the sampled range). The interpolants are memoized per
// temperature and never evicted, so repeated density queries at one
// temperature cost no further integration. The cache grows by one entry
// per distinct temperature over the model's lifetime; callers sweeping
// many temperatures should account for that.
//
// Quadrature is plain trapezoidal over fixed grids: deliberately coarse,
// deterministic and fast. Accuracy is bounded by grid density, which is a
// tunable trade-off of the method, not an error source to detect.
//
// ⚙️ Usage:
//
//	import "github.com/qoptica/parabands/band"
//
//	mat, _ := material.NewGaAs(material.WithTemperature(300),
//	    material.WithGapModel(material.Varshni))
//	bs, err := band.NewBulk(
//	    band.WithMaterial(mat),
//	    band.WithConductionEdges([]float64{0, 0.3 * physconst.E}),
//	    band.WithValenceEdges([]float64{0, -0.1 * physconst.E}),
//	)
//	if err != nil { ... }
//
//	efH, efE, err := bs.FermiLevels(300, 1e22) // J, J
//
// Units: in-plane/bulk momenta are in 1/m, band energies and Fermi levels
// in Joules. DOS takes its energy grid in eV and returns states per Joule
// per m^dim, the convention the Fermi solver integrates against.
//
// Concurrency: a model instance is not synchronized. Confine each
// instance to one goroutine or guard it externally; the lazy cache
// population is a plain check-then-insert.
package band
