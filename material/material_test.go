package material_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qoptica/parabands/material"
	"github.com/qoptica/parabands/physconst"
)

// TestNew_NominalGap verifies the default model leaves the 0 K gap intact.
func TestNew_NominalGap(t *testing.T) {
	mat, err := material.NewGaAs()
	require.NoError(t, err, "nominal construction must not error")

	assert.Equal(t, 1.519*physconst.E, mat.Eg, "NominalGap must keep Eg at its 0 K value")
	assert.Equal(t, 0.0, mat.Tempr, "default temperature is 0 K")
	assert.Equal(t, material.NominalGap, mat.Model, "default model is NominalGap")
}

// TestNew_VarshniZeroKelvin verifies Varshni is a no-op at T=0.
func TestNew_VarshniZeroKelvin(t *testing.T) {
	mat, err := material.NewGaAs(material.WithGapModel(material.Varshni))
	require.NoError(t, err, "Varshni at 0 K must not error")

	assert.Equal(t, 1.519*physconst.E, mat.Eg, "Varshni shift vanishes at T=0")
}

// TestNew_VarshniRoomTemperature checks the closed-form Varshni shift at 300 K.
func TestNew_VarshniRoomTemperature(t *testing.T) {
	const tempr = 300.0
	mat, err := material.NewGaAs(
		material.WithTemperature(tempr),
		material.WithGapModel(material.Varshni),
	)
	require.NoError(t, err)

	p := material.GaAsParams()
	want := p.Eg - physconst.E*0.001*p.Alpha*tempr*tempr/(tempr+p.Beta)
	assert.Equal(t, want, mat.Eg, "Varshni gap must follow Eg(0) − e·10⁻³·α·T²/(T+β)")
	assert.Less(t, mat.Eg, p.Eg, "the gap shrinks with temperature")
}

// TestNew_PhononCoupling checks the O'Donnell–Chen branch: T ≤ 0 is
// rejected, and a positive temperature lowers the gap.
func TestNew_PhononCoupling(t *testing.T) {
	_, err := material.NewGaAs(material.WithGapModel(material.PhononCoupling))
	assert.ErrorIs(t, err, material.ErrNonPositiveTemperature, "T=0 is singular for the coth form")

	_, err = material.NewGaAs(
		material.WithTemperature(-10),
		material.WithGapModel(material.PhononCoupling),
	)
	assert.ErrorIs(t, err, material.ErrNonPositiveTemperature, "negative T must be rejected")

	mat, err := material.NewGaAs(
		material.WithTemperature(300),
		material.WithGapModel(material.PhononCoupling),
	)
	require.NoError(t, err, "positive T must construct")

	p := material.GaAsParams()
	phonon := p.PhononEnergy * physconst.E * 0.001
	want := p.Eg - physconst.E*0.001*p.PhononEnergy*p.Coupling*
		(1.0/math.Tanh(phonon/(2*physconst.Kb*300))-1.0)
	assert.Equal(t, want, mat.Eg, "phonon-coupling gap must follow the coth form")
	assert.Less(t, mat.Eg, p.Eg, "the gap shrinks with temperature")
}

// TestNew_BadTemperature verifies NaN temperatures are rejected.
func TestNew_BadTemperature(t *testing.T) {
	_, err := material.NewGaAs(material.WithTemperature(math.NaN()))
	assert.ErrorIs(t, err, material.ErrBadTemperature, "NaN temperature must be rejected")
}

// TestGaAs_MassOrdering pins the GaAs valence mass hierarchy.
func TestGaAs_MassOrdering(t *testing.T) {
	mat, err := material.NewGaAs()
	require.NoError(t, err)

	assert.Greater(t, mat.Mhh, mat.Mso, "heavy holes outweigh split-off holes in GaAs")
	assert.Greater(t, mat.Mso, mat.Mlh, "split-off holes outweigh light holes in GaAs")
	assert.InEpsilon(t, 0.0665*physconst.M0, mat.Me, 1e-12, "electron mass is 0.0665·m0")
}

// TestScalingConstants re-derives Mr, A0 and E0 from the documented
// formulas and requires exact agreement.
func TestScalingConstants(t *testing.T) {
	mat, err := material.NewGaAs()
	require.NoError(t, err)

	mr := mat.Me / (mat.Mhh + mat.Me) * mat.Mhh
	assert.Equal(t, mr, mat.Mr, "reduced electron/heavy-hole mass")

	a0 := physconst.Hbar / physconst.E * physconst.Eps0 * mat.Eps *
		physconst.Hbar / physconst.E / mr * 4 * physconst.Pi
	assert.Equal(t, a0, mat.A0, "effective exciton Bohr radius")

	e0 := (physconst.E / physconst.Eps0 / mat.Eps) * (physconst.E / (2 * a0)) / physconst.ERy
	assert.Equal(t, e0, mat.E0, "effective Rydberg scale")

	// Sanity: the GaAs exciton Bohr radius is of order 10 nm.
	assert.InDelta(t, 1e-8, mat.A0, 1e-8, "a0 must land in the nanometer range")
}

// TestValenceMass covers the index→mass mapping and its failure contract.
func TestValenceMass(t *testing.T) {
	mat, err := material.NewGaAs()
	require.NoError(t, err)

	cases := []struct {
		j    int
		want float64
	}{
		{0, mat.Mhh},
		{1, mat.Mlh},
		{2, mat.Mso},
	}
	for _, tc := range cases {
		got, err := mat.ValenceMass(tc.j)
		require.NoError(t, err, "index %d is valid", tc.j)
		assert.Equal(t, tc.want, got, "mass for valence index %d", tc.j)
	}

	_, err = mat.ValenceMass(3)
	assert.ErrorIs(t, err, material.ErrValenceIndex, "index 3 has no valence band")
	_, err = mat.ValenceMass(-1)
	assert.ErrorIs(t, err, material.ErrValenceIndex, "negative index has no valence band")
}

// TestTwoBandModelParams verifies the symmetric model crystal preset.
func TestTwoBandModelParams(t *testing.T) {
	mat, err := material.New(material.TwoBandModelParams())
	require.NoError(t, err)

	assert.Equal(t, 2*physconst.M0, mat.Me, "electron mass is 2·m0")
	assert.Equal(t, mat.Me, mat.Mhh, "valence mass equals conduction mass")
	assert.Equal(t, mat.Mhh, mat.Mlh, "all valence slots share the single mass")
	assert.Equal(t, mat.Mhh, mat.Mso, "all valence slots share the single mass")
	assert.Equal(t, 24.93, mat.Eps, "model crystal permittivity")
}
