package render

import (
	"strings"

	"github.com/san-kum/lifesim/internal/automaton"
)

// blockPalette maps every display class to a glyph. Live classes fade
// with age, dying classes show as a faint trail.
var blockPalette = buildBlockPalette()

func buildBlockPalette() [256]rune {
	var p [256]rune
	for i := range p {
		switch {
		case uint8(i) == automaton.ClassDead:
			p[i] = ' '
		case automaton.LiveClass(uint8(i)):
			p[i] = '█'
		default:
			p[i] = '·'
		}
	}
	p[2] = '▓'
	p[3] = '▒'
	p[4] = '░'
	return p
}

// Blocks draws one glyph per cell.
type Blocks struct{}

func (Blocks) Name() string { return "blocks" }

func (Blocks) Render(f *automaton.Frame) string {
	var b strings.Builder
	b.Grow((f.Width + 1) * f.Height)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			b.WriteRune(blockPalette[f.At(x, y)])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
