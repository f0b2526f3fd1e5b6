package cells

import "github.com/san-kum/lifesim/internal/automaton"

// Aged runs Conway dynamics while tracking how many generations each
// cell has been alive. The count saturates at 255; display classes
// bucket it so renderers can shade long-lived colonies.
type Aged uint8

func (c Aged) Alive() bool { return c > 0 }

func (c Aged) Next(liveNeighbors int) Aged {
	switch liveNeighbors {
	case 3:
		return c.older()
	case 2:
		if c == 0 {
			return 0
		}
		return c.older()
	default:
		return 0
	}
}

func (c Aged) older() Aged {
	if c == 255 {
		return c
	}
	return c + 1
}

func (Aged) Live() Aged { return 1 }

// Class buckets the age into four live display classes.
func (c Aged) Class() uint8 {
	switch {
	case c == 0:
		return automaton.ClassDead
	case c < 3:
		return 1
	case c < 10:
		return 2
	case c < 50:
		return 3
	default:
		return 4
	}
}
