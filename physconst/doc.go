// Package physconst provides the process-wide, read-only physical
// constants used throughout parabands: the reduced Planck constant, the
// elementary charge, the vacuum permittivity, the Boltzmann constant, the
// free-electron mass and the Rydberg energy, all in SI units.
//
// The values are plain constants with no behavior. They are the single
// source of truth for every formula in material/ and band/: the derived
// exciton scaling constants of a material descriptor are reproducible
// bit-for-bit only because both sides read the same figures from here.
package physconst
