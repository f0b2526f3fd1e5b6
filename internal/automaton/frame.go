package automaton

// Display classes shared by the built-in rules. Class 0 is dead and
// invisible, classes 1 through 127 are live states (richer rules may
// report several, e.g. age buckets), and classes from ClassGhost up are
// dead states that still render, like the fading tail of a three-state
// rule.
const (
	ClassDead  uint8 = 0
	ClassAlive uint8 = 1
	ClassGhost uint8 = 128
)

// LiveClass reports whether display class c counts as a live cell.
func LiveClass(c uint8) bool {
	return c >= 1 && c < ClassGhost
}

// Frame is a renderer-facing snapshot of a grid: one display class per
// square, row-major. Frames are plain buffers; drivers own their reuse.
type Frame struct {
	Width      int
	Height     int
	Generation uint64
	Population int
	Cells      []uint8
}

// At returns the display class at (x, y). Coordinates must be in range.
func (f *Frame) At(x, y int) uint8 {
	return f.Cells[y*f.Width+x]
}

// AliveAt reports whether the cell at (x, y) is live.
func (f *Frame) AliveAt(x, y int) bool {
	return LiveClass(f.At(x, y))
}
