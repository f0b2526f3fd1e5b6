package metrics

import (
	"crypto/md5"

	"github.com/san-kum/lifesim/internal/automaton"
)

// DefaultStagnationWindow covers the common oscillators and spaceship
// reflections with room to spare.
const DefaultStagnationWindow = 64

// Stagnation detects when the board has settled into a cycle. It keeps
// a ring of recent board hashes; a repeat means every later generation
// replays the loop. Value reports the cycle period, 0 while the board
// is still evolving. A period of 1 is a frozen board.
type Stagnation struct {
	name      string
	window    int
	hashes    [][16]byte
	steps     []int
	period    int
	settledAt int
}

func NewStagnation(window int) *Stagnation {
	if window < 1 {
		window = DefaultStagnationWindow
	}
	return &Stagnation{
		name:      "stagnation",
		window:    window,
		settledAt: -1,
	}
}

func (s *Stagnation) Name() string { return s.name }

func (s *Stagnation) Observe(step int, f *automaton.Frame) {
	if s.settledAt >= 0 {
		return
	}
	h := md5.Sum(f.Cells)
	for i := len(s.hashes) - 1; i >= 0; i-- {
		if s.hashes[i] == h {
			s.period = step - s.steps[i]
			s.settledAt = step
			return
		}
	}
	s.hashes = append(s.hashes, h)
	s.steps = append(s.steps, step)
	if len(s.hashes) > s.window {
		s.hashes = s.hashes[1:]
		s.steps = s.steps[1:]
	}
}

func (s *Stagnation) Value() float64 {
	return float64(s.period)
}

// Settled reports whether a cycle has been detected.
func (s *Stagnation) Settled() bool { return s.settledAt >= 0 }

// Period returns the detected cycle length, 0 if none.
func (s *Stagnation) Period() int { return s.period }

// SettledAt returns the step the cycle was detected at, -1 if none.
func (s *Stagnation) SettledAt() int { return s.settledAt }

func (s *Stagnation) Reset() {
	s.hashes = s.hashes[:0]
	s.steps = s.steps[:0]
	s.period = 0
	s.settledAt = -1
}
