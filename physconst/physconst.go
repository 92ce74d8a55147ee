package physconst

import "math"

// SI values. Hbar is the reduced Planck constant ħ: every dispersion and
// scaling formula in this module uses ħ²k²/(2m) forms, never h itself.
const (
	Hbar = 1.0545718e-34  // reduced Planck constant ħ (J·s)
	E    = 1.6021766e-19  // elementary charge (C); also 1 eV in J
	Eps0 = 8.8541878e-12  // vacuum permittivity (F/m)
	Kb   = 1.3806490e-23  // Boltzmann constant (J/K)
	M0   = 9.1093837e-31  // free-electron mass (kg)
	ERy  = 2.1798723e-18  // Rydberg energy (J)
	Pi   = math.Pi
)

// KbEV is the Boltzmann constant expressed in eV/K, for formulas that
// operate on energy grids in electronvolts.
const KbEV = Kb / E
