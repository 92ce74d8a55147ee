package band

// Test-Bridge (White-Box) for the Fermi-Level Cache
//
// Purpose:
//   - Let the package-external tests assert that repeated FermiLevels
//     queries at one temperature reuse the cached interpolants instead of
//     re-running the integration, by identity rather than by wall clock.
//   - No production API change; test-only surface.

// solverOf returns the variant's embedded Fermi solver.
func solverOf(bs BandStructure) *fermiSolver {
	switch m := bs.(type) {
	case *Bulk:
		return m.fermi
	case *QuantumWell:
		return m.fermi
	default:
		return nil
	}
}

// CacheLen_TestOnly reports how many distinct temperatures are cached.
func CacheLen_TestOnly(bs BandStructure) int {
	return len(solverOf(bs).cache)
}

// CachedTable_TestOnly returns the cached electron and hole interpolants
// for one temperature, as opaque identities (nil, nil when not cached).
func CachedTable_TestOnly(bs BandStructure, tempr float64) (elec, holes any) {
	tab, ok := solverOf(bs).cache[tempr]
	if !ok {
		return nil, nil
	}

	return tab.elec, tab.holes
}
