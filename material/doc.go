// Package material provides semiconductor material descriptors for the
// parabolic band-structure models in band/.
//
// A Material is an immutable bundle of band-structure parameters for one
// semiconductor at one temperature: band gap, spin-orbit split-off
// offset, effective masses for the conduction and the three valence
// bands, static permittivity, refractive index and the Kane momentum
// matrix energy, plus the derived exciton scaling constants (reduced
// mass, effective Bohr radius, effective Rydberg scale).
//
// Temperature dependence is applied once, at construction, through one of
// two interchangeable empirical gap-shift models:
//
//   - Varshni:        Eg(T) = Eg(0) − α·T²/(T+β)
//   - PhononCoupling: Eg(T) = Eg(0) − S·ħω·(coth(ħω/(2·kB·T)) − 1)
//     (O'Donnell & Chen, Appl. Phys. Lett. 58 (25), 1991)
//
// The default NominalGap model leaves the 0 K gap untouched. The
// phonon-coupling model diverges at T → 0, so selecting it with T ≤ 0 is
// rejected with ErrNonPositiveTemperature at construction.
//
// ⚙️ Usage:
//
//	import "github.com/qoptica/parabands/material"
//
//	mat, err := material.NewGaAs(
//	    material.WithTemperature(300),
//	    material.WithGapModel(material.Varshni),
//	)
//	if err != nil {
//	    // handle ErrBadTemperature / ErrNonPositiveTemperature
//	}
//	fmt.Println("Eg(300 K) =", mat.Eg) // J
//
// Custom materials go through New with an explicit Params table; the
// GaAsParams and TwoBandModelParams presets reproduce the standard
// Vurgaftman GaAs table and a symmetric two-band model crystal.
//
// A Material never mutates after construction and may be shared read-only
// by any number of band-structure models.
package material
