package cells

import "github.com/san-kum/lifesim/internal/automaton"

// Brain is Brian's Brain, a three-state rule: a dead cell with exactly
// two firing neighbors starts firing, a firing cell begins dying, and a
// dying cell dies. Only firing cells count as live neighbors.
type Brain uint8

const (
	brainDead Brain = iota
	brainFiring
	brainDying
)

func (c Brain) Alive() bool { return c == brainFiring }

func (c Brain) Next(liveNeighbors int) Brain {
	switch c {
	case brainFiring:
		return brainDying
	case brainDying:
		return brainDead
	default:
		if liveNeighbors == 2 {
			return brainFiring
		}
		return brainDead
	}
}

func (Brain) Live() Brain { return brainFiring }

// Class renders dying cells as ghosts.
func (c Brain) Class() uint8 {
	switch c {
	case brainFiring:
		return automaton.ClassAlive
	case brainDying:
		return automaton.ClassGhost
	default:
		return automaton.ClassDead
	}
}
