package automaton

// View is a read-only window onto a grid. It shares the grid's storage,
// so it stays current as the underlying grid changes; copy with Snapshot
// for a stable picture.
type View[T Cell[T]] struct {
	g *Grid[T]
}

func (v View[T]) Width() int         { return v.g.Width() }
func (v View[T]) Height() int        { return v.g.Height() }
func (v View[T]) Boundary() Boundary { return v.g.Boundary() }

func (v View[T]) At(x, y int) (T, error) {
	return v.g.At(x, y)
}

func (v View[T]) Population() int {
	return v.g.Population()
}
