package automaton

// Grid is a rectangular board of cells with immutable dimensions and a
// boundary policy fixed at construction. Cells are stored row-major.
type Grid[T Cell[T]] struct {
	w, h     int
	boundary Boundary
	cells    []T
}

// NewGrid returns an all-dead grid of the given size.
func NewGrid[T Cell[T]](w, h int, b Boundary) (*Grid[T], error) {
	if w < 1 || h < 1 {
		return nil, ErrInvalidDimensions
	}
	return &Grid[T]{w: w, h: h, boundary: b, cells: make([]T, w*h)}, nil
}

func (g *Grid[T]) Width() int         { return g.w }
func (g *Grid[T]) Height() int        { return g.h }
func (g *Grid[T]) Boundary() Boundary { return g.boundary }

func (g *Grid[T]) inBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell at (x, y), with x in [0, w) and y in [0, h).
func (g *Grid[T]) At(x, y int) (T, error) {
	if !g.inBounds(x, y) {
		var zero T
		return zero, ErrOutOfBounds
	}
	return g.cells[y*g.w+x], nil
}

// Set replaces the cell at (x, y).
func (g *Grid[T]) Set(x, y int, c T) error {
	if !g.inBounds(x, y) {
		return ErrOutOfBounds
	}
	g.cells[y*g.w+x] = c
	return nil
}

// SetAlive writes the canonical live state or the dead state at (x, y).
func (g *Grid[T]) SetAlive(x, y int, alive bool) error {
	if !g.inBounds(x, y) {
		return ErrOutOfBounds
	}
	var c T
	if alive {
		c = c.Live()
	}
	g.cells[y*g.w+x] = c
	return nil
}

// LiveNeighbors counts live cells among the 8 surrounding squares under
// the grid's boundary policy.
func (g *Grid[T]) LiveNeighbors(x, y int) (int, error) {
	if !g.inBounds(x, y) {
		return 0, ErrOutOfBounds
	}
	return g.liveNeighbors(x, y), nil
}

func (g *Grid[T]) liveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny, ok := g.boundary.resolve(x+dx, y+dy, g.w, g.h)
			if !ok {
				continue
			}
			if g.cells[ny*g.w+nx].Alive() {
				n++
			}
		}
	}
	return n
}

// ComputeNext writes the successor of every cell into dst, reading only
// the receiver. Every neighbor count comes from the receiver's current
// state, so updates are simultaneous. The receiver is never modified.
func (g *Grid[T]) ComputeNext(dst *Grid[T]) error {
	if dst == nil || dst.w != g.w || dst.h != g.h {
		return ErrDimensionMismatch
	}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			i := y*g.w + x
			dst.cells[i] = g.cells[i].Next(g.liveNeighbors(x, y))
		}
	}
	return nil
}

// Fill sets every cell to c.
func (g *Grid[T]) Fill(c T) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Clear sets every cell to the dead state.
func (g *Grid[T]) Clear() {
	var zero T
	g.Fill(zero)
}

// Population counts live cells.
func (g *Grid[T]) Population() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Alive() {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{w: g.w, h: g.h, boundary: g.boundary, cells: make([]T, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// View returns a read-only window onto the grid.
func (g *Grid[T]) View() View[T] {
	return View[T]{g: g}
}

// Snapshot fills f with the grid's display state, reusing f's cell
// buffer when it is large enough. The frame's generation is left for
// the caller to stamp.
func (g *Grid[T]) Snapshot(f *Frame) {
	f.Width, f.Height = g.w, g.h
	if cap(f.Cells) < len(g.cells) {
		f.Cells = make([]uint8, len(g.cells))
	}
	f.Cells = f.Cells[:len(g.cells)]

	pop := 0
	var zero T
	if _, classed := any(zero).(Classer); classed {
		for i, c := range g.cells {
			f.Cells[i] = any(c).(Classer).Class()
			if c.Alive() {
				pop++
			}
		}
	} else {
		for i, c := range g.cells {
			if c.Alive() {
				f.Cells[i] = ClassAlive
				pop++
			} else {
				f.Cells[i] = ClassDead
			}
		}
	}
	f.Population = pop
}
