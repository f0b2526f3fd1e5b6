package automaton

// Cell is the state of a single grid square. Implementations are small
// value types whose zero value is the dead state.
type Cell[T any] interface {
	// Alive reports whether the cell counts as a live neighbor.
	Alive() bool

	// Next returns the state one generation later. liveNeighbors is
	// always in 0..8 and implementations must handle every count.
	Next(liveNeighbors int) T

	// Live returns the canonical live state, used for edits and fills.
	Live() T
}

// Classer is an optional capability for cells that distinguish display
// classes beyond dead and alive. Frame documents the class encoding.
type Classer interface {
	Class() uint8
}
