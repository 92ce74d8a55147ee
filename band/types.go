package band

// Carrier selects which carrier population an operation refers to.
//
// DOS computes the conduction-band sum only for Electrons; every other
// value, Holes included, takes the valence branch. The permissive
// fallback is deliberate and mirrors the established solver behavior —
// treat anything that is not Electrons as holes rather than failing.
type Carrier int

const (
	// Electrons selects the conduction-band population.
	Electrons Carrier = iota

	// Holes selects the valence-band population.
	Holes
)

// Transition is a read-only projection of one optical transition: the
// momentum grid it was sampled on, the valence and conduction band
// energies (J) and the dipole matrix element at each momentum.
type Transition struct {
	K          []float64
	Valence    []float64
	Conduction []float64
	Dipole     []float64
}

// BandStructure is the capability surface shared by the Bulk and
// QuantumWell variants. All momentum grids are in 1/m; band energies and
// Fermi levels are in Joules; DOS energy grids are in eV (see package doc).
type BandStructure interface {
	// Dim reports the spatial dimensionality (3 bulk, 2 quantum well).
	Dim() int

	// ConductionEnergy evaluates subband j of the conduction band on the
	// momentum grid k. ErrBandIndex when j is out of range.
	ConductionEnergy(j int, k []float64) ([]float64, error)

	// ValenceEnergy evaluates valence subband j on the momentum grid k.
	// ErrBandIndex when j is out of range.
	ValenceEnergy(j int, k []float64) ([]float64, error)

	// Dipole evaluates the interband dipole matrix element between
	// valence subband jv and conduction subband jc on the momentum grid k.
	Dipole(jv, jc int, k []float64) ([]float64, error)

	// OpticalTransition bundles k, valence energy, conduction energy and
	// dipole for one subband pair. Side-effect free.
	OpticalTransition(k []float64, jv, jc int) (Transition, error)

	// DOS sums the parabolic subband density of states over all subbands
	// of the selected carrier type, on an energy grid in eV.
	DOS(energy []float64, carriers Carrier) []float64

	// FermiLevels returns the hole and electron quasi-Fermi levels (J, on
	// the absolute energy scale) for the given temperature (K) and carrier
	// density (per m^dim). ErrNonPositiveTemperature when T ≤ 0.
	FermiLevels(tempr, dens float64) (efHoles, efElectrons float64, err error)
}

// compile-time interface checks
var (
	_ BandStructure = (*Bulk)(nil)
	_ BandStructure = (*QuantumWell)(nil)
)
