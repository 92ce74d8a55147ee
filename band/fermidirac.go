package band

import (
	"math"

	"github.com/qoptica/parabands/physconst"
)

// FermiDirac returns the equilibrium occupation probability
// 1/(1+exp((E−Ef)/(kB·T))) with energy and ef in eV and tempr in Kelvin.
//
// The kernel is pure and unguarded: tempr ≤ 0 is a caller error and
// produces the corresponding non-finite value. Operations that accept a
// temperature from outside (FermiLevels, FermiLevel2D) validate it before
// reaching this point.
func FermiDirac(energy, ef, tempr float64) float64 {
	return 1.0 / (1.0 + math.Exp((energy-ef)/(physconst.KbEV*tempr)))
}

// FermiLevel2D returns the closed-form Fermi energy of a 2-D parabolic
// gas of fermions, in eV relative to the band edge:
//
//	Ef = kB·T/e · ln(exp(π·ħ²·dens/(m·kB·T)) − 1)
//
// meff is the effective mass (kg), dens the sheet density (1/m²).
// Unlike the grid-based FermiLevels solver this needs no integration; it
// is exact for a single 2-D subband. ErrNonPositiveTemperature when
// tempr ≤ 0 or NaN.
func FermiLevel2D(meff, tempr, dens float64) (float64, error) {
	if tempr <= 0 || math.IsNaN(tempr) {
		return 0, ErrNonPositiveTemperature
	}

	beta := 1.0 / physconst.Kb / tempr
	arg := physconst.Hbar * beta * physconst.Pi * dens * physconst.Hbar / meff

	return physconst.Kb / physconst.E * tempr * math.Log(math.Exp(arg)-1.0), nil
}
