package pattern

import (
	"fmt"
	"sort"
	"strings"
)

// Board is the minimal editing surface a pattern stamps onto. The sim
// package's Machine satisfies it.
type Board interface {
	Width() int
	Height() int
	SetAlive(x, y int, alive bool) error
}

// Pattern is a named arrangement of live cells, drawn as rows of '#'
// for live and '.' for dead. Dead cells are transparent when stamped.
type Pattern struct {
	Name string
	Desc string
	Rows []string
}

func (p Pattern) Width() int {
	w := 0
	for _, r := range p.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

func (p Pattern) Height() int { return len(p.Rows) }

// Cells returns the live coordinates relative to the pattern origin.
func (p Pattern) Cells() [][2]int {
	var out [][2]int
	for y, row := range p.Rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

func (p Pattern) String() string {
	return strings.Join(p.Rows, "\n")
}

// Stamp writes p onto b with its top-left corner at (x, y). The whole
// pattern must fit on the board.
func Stamp(b Board, p Pattern, x, y int) error {
	if x < 0 || y < 0 || x+p.Width() > b.Width() || y+p.Height() > b.Height() {
		return fmt.Errorf("pattern %s does not fit at (%d, %d) on a %dx%d board",
			p.Name, x, y, b.Width(), b.Height())
	}
	for _, c := range p.Cells() {
		if err := b.SetAlive(x+c[0], y+c[1], true); err != nil {
			return err
		}
	}
	return nil
}

// Center stamps p at the middle of the board.
func Center(b Board, p Pattern) error {
	return Stamp(b, p, (b.Width()-p.Width())/2, (b.Height()-p.Height())/2)
}

// Find returns the named catalog pattern.
func Find(name string) (Pattern, error) {
	for _, p := range catalog {
		if p.Name == name {
			return p, nil
		}
	}
	return Pattern{}, fmt.Errorf("unknown pattern: %s", name)
}

// All returns the catalog sorted by name.
func All() []Pattern {
	out := make([]Pattern, len(catalog))
	copy(out, catalog)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the catalog names sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, p := range catalog {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}
