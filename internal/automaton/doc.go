// Package automaton provides the core grid engine for cellular automata.
//
// The package defines the cell contract and the boards the simulator
// steps:
//
//   - [Cell]: per-square state with a total successor rule over 0..8 live neighbors
//   - [Grid]: rectangular board with a fixed boundary policy
//   - [Boundary]: dead border or toroidal wrap edge handling
//   - [Frame]: display snapshot consumed by renderers
//   - [View]: read-only window for inspection without mutation
//
// # Example
//
//	cur, _ := automaton.NewGrid[cells.Binary](64, 36, automaton.DeadBorder)
//	nxt, _ := automaton.NewGrid[cells.Binary](64, 36, automaton.DeadBorder)
//	_ = cur.ComputeNext(nxt)
//
// # Thread Safety
//
// Grids are NOT thread-safe and stepping is strictly single-threaded.
// Concurrent runs each own their grids; see the sim package Ensemble.
package automaton
