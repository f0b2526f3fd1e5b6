package automaton

import "fmt"

// Boundary is the edge policy of a grid, fixed at construction.
type Boundary int

const (
	// DeadBorder treats every out-of-range neighbor as dead.
	DeadBorder Boundary = iota

	// Wrap joins opposite edges into a torus.
	Wrap
)

func (b Boundary) String() string {
	switch b {
	case Wrap:
		return "wrap"
	default:
		return "border"
	}
}

// ParseBoundary maps a config or flag name onto a policy.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "border", "dead", "":
		return DeadBorder, nil
	case "wrap", "torus":
		return Wrap, nil
	}
	return DeadBorder, fmt.Errorf("unknown boundary policy: %s", s)
}

// resolve maps possibly out-of-range coordinates onto a readable cell.
// ok is false when the policy treats the position as dead.
func (b Boundary) resolve(x, y, w, h int) (int, int, bool) {
	if x >= 0 && x < w && y >= 0 && y < h {
		return x, y, true
	}
	if b == Wrap {
		return ((x % w) + w) % w, ((y % h) + h) % h, true
	}
	return 0, 0, false
}
