package sim

import (
	"math/rand"
	"time"

	"github.com/san-kum/lifesim/internal/automaton"
)

// Simulator owns two same-size grids and steps them by pointer swap:
// each generation is computed into the scratch grid strictly from the
// current snapshot, then the two trade places. Cells are never copied.
type Simulator[T automaton.Cell[T]] struct {
	cur, nxt   *automaton.Grid[T]
	generation uint64
	phase      Phase
}

// New returns an idle simulator over an all-dead board at generation 0.
func New[T automaton.Cell[T]](w, h int, b automaton.Boundary) (*Simulator[T], error) {
	cur, err := automaton.NewGrid[T](w, h, b)
	if err != nil {
		return nil, err
	}
	nxt, err := automaton.NewGrid[T](w, h, b)
	if err != nil {
		return nil, err
	}
	return &Simulator[T]{cur: cur, nxt: nxt}, nil
}

func (s *Simulator[T]) Width() int                   { return s.cur.Width() }
func (s *Simulator[T]) Height() int                  { return s.cur.Height() }
func (s *Simulator[T]) Boundary() automaton.Boundary { return s.cur.Boundary() }
func (s *Simulator[T]) Generation() uint64           { return s.generation }
func (s *Simulator[T]) Phase() Phase                 { return s.phase }
func (s *Simulator[T]) Population() int              { return s.cur.Population() }

// Current returns a read-only view of the live grid. The view is valid
// until the next Step, Clear or Randomize.
func (s *Simulator[T]) Current() automaton.View[T] {
	return s.cur.View()
}

// Step advances exactly one generation. On failure the board and the
// generation counter are left unchanged.
func (s *Simulator[T]) Step() error {
	if s.phase != PhaseIdle {
		return automaton.ErrStepInProgress
	}
	s.phase = PhaseStepping
	err := s.cur.ComputeNext(s.nxt)
	s.phase = PhaseIdle
	if err != nil {
		return &automaton.StepError{Generation: s.generation, Wrapped: err}
	}
	s.cur, s.nxt = s.nxt, s.cur
	s.generation++
	return nil
}

func (s *Simulator[T]) editable() error {
	if s.phase != PhaseIdle {
		return automaton.ErrStepInProgress
	}
	return nil
}

// Toggle flips the cell at (x, y) between dead and the canonical live
// state. Accepted only between steps.
func (s *Simulator[T]) Toggle(x, y int) error {
	if err := s.editable(); err != nil {
		return err
	}
	c, err := s.cur.At(x, y)
	if err != nil {
		return err
	}
	return s.cur.SetAlive(x, y, !c.Alive())
}

// SetAlive writes the live or dead state at (x, y) between steps.
func (s *Simulator[T]) SetAlive(x, y int, alive bool) error {
	if err := s.editable(); err != nil {
		return err
	}
	return s.cur.SetAlive(x, y, alive)
}

// Set replaces the cell at (x, y) with a typed state between steps.
func (s *Simulator[T]) Set(x, y int, c T) error {
	if err := s.editable(); err != nil {
		return err
	}
	return s.cur.Set(x, y, c)
}

// Clear resets to an all-dead board at generation 0.
func (s *Simulator[T]) Clear() error {
	if err := s.editable(); err != nil {
		return err
	}
	s.cur.Clear()
	s.generation = 0
	return nil
}

// Randomize resets to a seeded random board with the given live density
// in [0, 1], at generation 0. Seed 0 derives one from the clock.
func (s *Simulator[T]) Randomize(seed int64, density float64) error {
	if err := s.editable(); err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var zero T
	live := zero.Live()
	for y := 0; y < s.cur.Height(); y++ {
		for x := 0; x < s.cur.Width(); x++ {
			c := zero
			if rng.Float64() < density {
				c = live
			}
			s.cur.Set(x, y, c)
		}
	}
	s.generation = 0
	return nil
}

// Snapshot fills f with the current board and stamps the generation.
func (s *Simulator[T]) Snapshot(f *automaton.Frame) {
	s.cur.Snapshot(f)
	f.Generation = s.generation
}
