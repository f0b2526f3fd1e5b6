package render

import (
	"fmt"
	"strings"

	"github.com/san-kum/lifesim/internal/automaton"
)

// FrameToSVG renders a board snapshot as SVG, one square per cell. Live
// classes are drawn in phosphor green, ghost classes as a dim trail.
func FrameToSVG(f *automaton.Frame, scale float64) string {
	if f == nil || f.Width == 0 || f.Height == 0 {
		return ""
	}

	width := float64(f.Width) * scale
	height := float64(f.Height) * scale

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	gap := scale * 0.1

	writeClass := func(fill string, want func(c uint8) bool) {
		sb.WriteString(fmt.Sprintf("<g fill=%q>\n", fill))
		for y := 0; y < f.Height; y++ {
			for x := 0; x < f.Width; x++ {
				c := f.At(x, y)
				if c == automaton.ClassDead || !want(c) {
					continue
				}
				sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, float64(x)*scale+gap/2, float64(y)*scale+gap/2, scale-gap, scale-gap))
			}
		}
		sb.WriteString("</g>\n")
	}

	writeClass("#00ff00", automaton.LiveClass)
	writeClass("#1a661a", func(c uint8) bool { return c >= automaton.ClassGhost })

	sb.WriteString("</svg>")
	return sb.String()
}
