package band

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"

	"github.com/qoptica/parabands/physconst"
)

// Fermi-solver grid configuration. The probe grids span the gap midpoint
// to well beyond the respective band edge; the integration windows cover
// the occupied tail of each band. Counts and spans are the established
// solver configuration — coarse, fixed, deterministic.
const (
	elecProbeCount = 50   // candidate electron Fermi energies
	elecProbeAbove = 1.5  // probe ceiling above the conduction band bottom (eV)
	elecGridCount  = 3000 // electron integration points
	elecGridBelow  = 0.5  // integration window below the band bottom (eV)
	elecGridAbove  = 5.0  // integration window above the band bottom (eV)

	holeProbeCount = 550  // candidate hole Fermi energies
	holeProbeAbove = 1.0  // probe ceiling above the valence band top (eV)
	holeGridCount  = 350  // hole integration points
	holeGridAbove  = 10.0 // integration window above the valence band top (eV)
)

// fermiTable holds the two inverse maps solved for one temperature.
type fermiTable struct {
	elec  *extrapLinear // integrated density → electron Ef (eV, edge-relative)
	holes *extrapLinear // integrated density → hole Ef (eV, edge-relative)
}

// fermiSolver is the dimension-agnostic Fermi-level machinery shared by
// Bulk and QuantumWell. The variant supplies its own DOS through the dos
// closure; everything else — probe grids, quadrature, inversion, the
// per-temperature cache — is common.
//
// The cache maps temperature → fermiTable and is never evicted. Cache
// population is check-then-insert with no locking; see package doc.
type fermiSolver struct {
	eg     float64 // temperature-corrected gap (J)
	edgesC []float64
	edgesV []float64
	dos    func(energy []float64, carriers Carrier) []float64
	cache  map[float64]*fermiTable
}

func newFermiSolver(eg float64, edgesC, edgesV []float64, dos func([]float64, Carrier) []float64) *fermiSolver {
	return &fermiSolver{
		eg:     eg,
		edgesC: edgesC,
		edgesV: edgesV,
		dos:    dos,
		cache:  make(map[float64]*fermiTable),
	}
}

// levels returns (hole Ef, electron Ef) in Joules on the absolute energy
// scale for the given temperature and carrier density. The expensive
// solve runs once per distinct temperature; evaluation per density is an
// interpolant lookup.
func (s *fermiSolver) levels(tempr, dens float64) (float64, float64, error) {
	if tempr <= 0 || math.IsNaN(tempr) {
		return 0, 0, ErrNonPositiveTemperature
	}

	tab, ok := s.cache[tempr]
	if !ok {
		var err error
		if tab, err = s.solve(tempr); err != nil {
			return 0, 0, err
		}
		s.cache[tempr] = tab
	}

	cbb := floats.Min(s.edgesC) / physconst.E // conduction band bottom (eV)
	vbt := -floats.Max(s.edgesV) / physconst.E // valence band top, hole direction (eV)

	efH := tab.holes.Predict(dens)
	efE := tab.elec.Predict(dens)

	// Undo the edge-relative offsets applied during sampling: holes were
	// probed downward from the valence top, electrons upward from the
	// conduction bottom.
	return (-efH - vbt) * physconst.E, (efE + cbb) * physconst.E, nil
}

// solve builds both density→Fermi-level interpolants for one temperature.
func (s *fermiSolver) solve(tempr float64) (*fermiTable, error) {
	cbb := floats.Min(s.edgesC) / physconst.E
	vbt := -floats.Max(s.edgesV) / physconst.E
	halfGap := s.eg / physconst.E * 0.5

	elec, err := s.invert(
		floats.Span(make([]float64, elecProbeCount), halfGap, cbb+elecProbeAbove),
		floats.Span(make([]float64, elecGridCount), cbb-elecGridBelow, cbb+elecGridAbove),
		Electrons, tempr,
	)
	if err != nil {
		return nil, fmt.Errorf("electron branch at %g K: %w", tempr, err)
	}

	holes, err := s.invert(
		floats.Span(make([]float64, holeProbeCount), -halfGap, vbt+holeProbeAbove),
		floats.Span(make([]float64, holeGridCount), vbt, vbt+holeGridAbove),
		Holes, tempr,
	)
	if err != nil {
		return nil, fmt.Errorf("hole branch at %g K: %w", tempr, err)
	}

	return &fermiTable{elec: elec, holes: holes}, nil
}

// invert integrates occupation×DOS over the energy window for every probe
// Fermi energy and fits the inverse density→Ef map. energy and probe are
// in eV; the quadrature abscissa is energy in Joules, so the integrated
// concentration comes out per unit length/area/volume.
func (s *fermiSolver) invert(probe, energy []float64, carriers Carrier, tempr float64) (*extrapLinear, error) {
	dos := s.dos(energy, carriers)

	x := make([]float64, len(energy))
	for i, e := range energy {
		x[i] = e * physconst.E
	}

	conc := make([]float64, len(probe))
	f := make([]float64, len(energy))
	for jj, ef := range probe {
		for i, e := range energy {
			f[i] = FermiDirac(e, ef, tempr) * dos[i]
		}
		conc[jj] = integrate.Trapezoidal(x, f)
	}

	return newExtrapLinear(conc, probe)
}

// extrapLinear is a monotone piecewise-linear interpolant with linear
// extrapolation beyond the fitted range; interp.PiecewiseLinear clamps at
// the endpoints, so the outermost segments are extended by hand.
type extrapLinear struct {
	pl interp.PiecewiseLinear

	x0, y0, s0 float64 // first sample and leading segment slope
	xn, yn, sn float64 // last sample and trailing segment slope
}

// newExtrapLinear fits xs→ys. Runs of non-increasing xs (occupation
// underflow at extreme probe energies can flatten the density samples)
// are compressed to their first point so the fit stays strictly
// monotone; ErrDegenerateGrid if fewer than two distinct samples remain.
func newExtrapLinear(xs, ys []float64) (*extrapLinear, error) {
	fx := make([]float64, 0, len(xs))
	fy := make([]float64, 0, len(ys))
	for i := range xs {
		if i > 0 && xs[i] <= fx[len(fx)-1] {
			continue
		}
		fx = append(fx, xs[i])
		fy = append(fy, ys[i])
	}
	if len(fx) < 2 {
		return nil, ErrDegenerateGrid
	}

	e := &extrapLinear{}
	if err := e.pl.Fit(fx, fy); err != nil {
		return nil, fmt.Errorf("band: fitting density map: %w", err)
	}

	n := len(fx)
	e.x0, e.y0 = fx[0], fy[0]
	e.s0 = (fy[1] - fy[0]) / (fx[1] - fx[0])
	e.xn, e.yn = fx[n-1], fy[n-1]
	e.sn = (fy[n-1] - fy[n-2]) / (fx[n-1] - fx[n-2])

	return e, nil
}

// Predict evaluates the interpolant at x, extending the end segments
// linearly outside the fitted range.
func (e *extrapLinear) Predict(x float64) float64 {
	switch {
	case x < e.x0:
		return e.y0 + e.s0*(x-e.x0)
	case x > e.xn:
		return e.yn + e.sn*(x-e.xn)
	default:
		return e.pl.Predict(x)
	}
}
