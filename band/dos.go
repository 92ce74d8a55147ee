package band

import (
	"math"

	"github.com/qoptica/parabands/physconst"
)

// SubbandDOS evaluates the density of states of a single parabolic
// subband for a 1-, 2- or 3-dimensional carrier gas:
//
//	g(E) = Ω_d/(2π)^d · (2m/ħ²)^{d/2} · (E·e)^{(d−2)/2}
//
// with the integrated solid angle Ω_d = 2, 2π, 4π for d = 1, 2, 3.
// Eq. (6.17) in [Haug, Koch, Quantum Theory of the Optical and Electronic
// Properties of Semiconductors, 2004].
//
// energy is relative to the subband edge, in eV; the result is states per
// Joule per unit length/area/volume. States below the edge contribute
// zero, and the edge value itself is kept finite in every dimension:
// the half-step gate applies at E = 0, NaN from the power term maps to 0
// and a divergent 1-D edge value saturates at MaxFloat64 instead of
// propagating ±Inf.
func SubbandDOS(energy []float64, meff float64, dim int) []float64 {
	var omega float64
	switch dim {
	case 1:
		omega = 2
	case 2:
		omega = 2 * physconst.Pi
	default:
		omega = 4 * physconst.Pi
	}

	d := float64(dim)
	pref := omega / math.Pow(2*physconst.Pi, d) *
		math.Pow(2*meff/physconst.Hbar/physconst.Hbar, d/2)
	expo := (d - 2) / 2

	dos := make([]float64, len(energy))
	for i, e := range energy {
		if e < 0 {
			continue
		}
		gate := 1.0
		if e == 0 {
			gate = 0.5
		}
		dos[i] = nanToNum(pref * math.Pow(e*physconst.E, expo) * gate)
	}

	return dos
}

// nanToNum floors non-finite values: NaN to 0, ±Inf to ±MaxFloat64.
func nanToNum(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	default:
		return v
	}
}
