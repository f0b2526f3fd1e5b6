package render

import (
	"strings"

	"github.com/san-kum/lifesim/internal/automaton"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas packs pixels into braille characters, 2x4 pixels per char.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set marks a pixel at (x, y) in sub-pixel coordinates. The canvas
// covers (Width*2) x (Height*4) sub-pixels.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Braille draws four board rows per text line, for large grids. Only
// live cells mark pixels; dying trails are below braille resolution.
type Braille struct{}

func (Braille) Name() string { return "braille" }

func (Braille) Render(f *automaton.Frame) string {
	c := NewCanvas((f.Width+1)/2, (f.Height+3)/4)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if automaton.LiveClass(f.At(x, y)) {
				c.Set(x, y)
			}
		}
	}
	return c.String()
}
