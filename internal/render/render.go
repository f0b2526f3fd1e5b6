package render

import (
	"fmt"

	"github.com/san-kum/lifesim/internal/automaton"
)

// Renderer turns a frame into terminal text, top row first.
type Renderer interface {
	Name() string
	Render(f *automaton.Frame) string
}

// ByName returns the named renderer.
func ByName(name string) (Renderer, error) {
	switch name {
	case "blocks":
		return Blocks{}, nil
	case "braille":
		return Braille{}, nil
	}
	return nil, fmt.Errorf("unknown renderer: %s", name)
}

// Names lists the available renderers.
func Names() []string {
	return []string{"blocks", "braille"}
}
