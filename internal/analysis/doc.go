// Package analysis provides offline characterization tools for
// automaton runs.
//
// The package includes tools for describing a rule's long-run behavior:
//
//   - [DominantPeriod]: strongest oscillation period of a census series
//   - [DamageSpread]: divergence of twin boards after a one-cell flip
//   - [DensitySweep]: survival as a function of initial fill density
//
// # Sensitivity Detection
//
// Damage that keeps growing means the rule amplifies perturbations:
//
//	d, err := analysis.DamageSpread(build, seed, 0.25, 200)
//	if err == nil && !d.Healed && d.Rate > 0 {
//	    // one flipped cell rewrites the board
//	}
package analysis
