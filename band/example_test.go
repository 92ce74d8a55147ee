package band_test

import (
	"fmt"

	"github.com/qoptica/parabands/band"
	"github.com/qoptica/parabands/material"
	"github.com/qoptica/parabands/physconst"
)

// ExampleBulk demonstrates the k=0 band alignment of a GaAs bulk model:
// the conduction edge sits at the (0 K) gap and the valence edge at zero.
func ExampleBulk() {
	mat, _ := material.NewGaAs()
	bs, _ := band.NewBulk(
		band.WithMaterial(mat),
		band.WithConductionEdges([]float64{0}),
		band.WithValenceEdges([]float64{0, 0}),
	)

	ec, _ := bs.ConductionEnergy(0, []float64{0})
	ev, _ := bs.ValenceEnergy(0, []float64{0})

	fmt.Printf("Ec(k=0) = %.3f eV\n", ec[0]/physconst.E)
	fmt.Printf("Ev(k=0) = %.3f eV\n", ev[0]/physconst.E)
	// Output:
	// Ec(k=0) = 1.519 eV
	// Ev(k=0) = 0.000 eV
}

// ExampleQuantumWell demonstrates the strong-confinement dipole: unity
// for every momentum.
func ExampleQuantumWell() {
	qw, _ := band.NewQuantumWell()

	d, _ := qw.Dipole(0, 0, []float64{0, 1e8, 1e9})

	fmt.Println(d)
	// Output:
	// [1 1 1]
}

// ExampleBandStructure_FermiLevels sketches a density sweep at one
// temperature: the expensive solve runs once, each query is a lookup.
func ExampleBandStructure_FermiLevels() {
	bs, _ := band.NewBulk()

	var bands band.BandStructure = bs
	for _, dens := range []float64{1e21, 1e22, 1e23} {
		efH, efE, err := bands.FermiLevels(300, dens)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("n=%.0e: efE-efH = %.2f eV\n", dens, (efE-efH)/physconst.E)
	}
	// ordering holds for every density: efE above efH
}
