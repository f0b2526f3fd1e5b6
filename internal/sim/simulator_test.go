package sim

import (
	"errors"
	"testing"

	"github.com/san-kum/lifesim/internal/automaton"
	"github.com/san-kum/lifesim/internal/cells"
)

func newLife(t *testing.T, w, h int, b automaton.Boundary) *Simulator[cells.Binary] {
	t.Helper()
	s, err := New[cells.Binary](w, h, b)
	if err != nil {
		t.Fatalf("new simulator: %v", err)
	}
	return s
}

func mustSet(t *testing.T, s *Simulator[cells.Binary], coords [][2]int) {
	t.Helper()
	for _, c := range coords {
		if err := s.SetAlive(c[0], c[1], true); err != nil {
			t.Fatalf("set (%d,%d): %v", c[0], c[1], err)
		}
	}
}

func TestGenerationCounter(t *testing.T) {
	s := newLife(t, 8, 8, automaton.DeadBorder)
	if s.Generation() != 0 {
		t.Fatalf("fresh simulator generation = %d, want 0", s.Generation())
	}

	for i := 1; i <= 7; i++ {
		if err := s.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if s.Generation() != uint64(i) {
			t.Errorf("generation after %d steps = %d", i, s.Generation())
		}
	}
}

func TestEmptyBoardStaysEmpty(t *testing.T) {
	s := newLife(t, 6, 6, automaton.Wrap)

	for i := 0; i < 5; i++ {
		if err := s.Step(); err != nil {
			t.Fatalf("step: %v", err)
		}
		if s.Population() != 0 {
			t.Fatalf("population after %d steps = %d, want 0", i+1, s.Population())
		}
	}
}

func TestBlockIsStillLife(t *testing.T) {
	s := newLife(t, 6, 6, automaton.DeadBorder)
	block := [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}}
	mustSet(t, s, block)

	for i := 0; i < 5; i++ {
		if err := s.Step(); err != nil {
			t.Fatalf("step: %v", err)
		}
		if s.Population() != 4 {
			t.Fatalf("population = %d at step %d, want 4", s.Population(), i+1)
		}
		for _, c := range block {
			cell, err := s.Current().At(c[0], c[1])
			if err != nil {
				t.Fatalf("at (%d,%d): %v", c[0], c[1], err)
			}
			if !cell.Alive() {
				t.Fatalf("block cell (%d,%d) died at step %d", c[0], c[1], i+1)
			}
		}
	}
}

func TestBlinkerPeriodTwo(t *testing.T) {
	s := newLife(t, 5, 5, automaton.DeadBorder)
	mustSet(t, s, [][2]int{{2, 1}, {2, 2}, {2, 3}})

	vertical := func() bool {
		c, err := s.Current().At(2, 1)
		if err != nil {
			t.Fatalf("at (2,1): %v", err)
		}
		return c.Alive()
	}

	for i := 1; i <= 6; i++ {
		if err := s.Step(); err != nil {
			t.Fatalf("step: %v", err)
		}
		if s.Population() != 3 {
			t.Fatalf("population = %d at step %d, want 3", s.Population(), i)
		}
		if want := i%2 == 0; vertical() != want {
			t.Errorf("orientation wrong at step %d", i)
		}
	}
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	s := newLife(t, 10, 10, automaton.DeadBorder)
	mustSet(t, s, [][2]int{{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}})

	var before automaton.Frame
	s.Snapshot(&before)

	for i := 0; i < 4; i++ {
		if err := s.Step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}

	var after automaton.Frame
	s.Snapshot(&after)

	if after.Population != 5 {
		t.Fatalf("population = %d, want 5", after.Population)
	}
	for i := 0; i < 10; i++ {
		if after.AliveAt(i, 0) {
			t.Errorf("unexpected live cell in top row at x=%d", i)
		}
		if after.AliveAt(0, i) {
			t.Errorf("unexpected live cell in left column at y=%d", i)
		}
	}
	for y := 1; y < 10; y++ {
		for x := 1; x < 10; x++ {
			if after.AliveAt(x, y) != before.AliveAt(x-1, y-1) {
				t.Errorf("cell (%d,%d) does not match a (+1,+1) translation", x, y)
			}
		}
	}
}

func TestToggle(t *testing.T) {
	s := newLife(t, 4, 4, automaton.DeadBorder)

	if err := s.Toggle(1, 2); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if s.Population() != 1 {
		t.Fatalf("population after toggle = %d, want 1", s.Population())
	}

	if err := s.Toggle(1, 2); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if s.Population() != 0 {
		t.Fatalf("population after second toggle = %d, want 0", s.Population())
	}

	if err := s.Toggle(4, 0); !errors.Is(err, automaton.ErrOutOfBounds) {
		t.Errorf("toggle out of range = %v, want ErrOutOfBounds", err)
	}
}

func TestEditsRejectedWhileStepping(t *testing.T) {
	s := newLife(t, 4, 4, automaton.DeadBorder)
	s.phase = PhaseStepping

	if err := s.Toggle(1, 1); !errors.Is(err, automaton.ErrStepInProgress) {
		t.Errorf("Toggle = %v, want ErrStepInProgress", err)
	}
	if err := s.SetAlive(1, 1, true); !errors.Is(err, automaton.ErrStepInProgress) {
		t.Errorf("SetAlive = %v, want ErrStepInProgress", err)
	}
	if err := s.Clear(); !errors.Is(err, automaton.ErrStepInProgress) {
		t.Errorf("Clear = %v, want ErrStepInProgress", err)
	}
	if err := s.Randomize(1, 0.5); !errors.Is(err, automaton.ErrStepInProgress) {
		t.Errorf("Randomize = %v, want ErrStepInProgress", err)
	}
	if err := s.Step(); !errors.Is(err, automaton.ErrStepInProgress) {
		t.Errorf("Step = %v, want ErrStepInProgress", err)
	}

	s.phase = PhaseIdle
	if err := s.Toggle(1, 1); err != nil {
		t.Fatalf("toggle once idle: %v", err)
	}
}

func TestClearResetsGeneration(t *testing.T) {
	s := newLife(t, 5, 5, automaton.DeadBorder)
	mustSet(t, s, [][2]int{{2, 1}, {2, 2}, {2, 3}})

	for i := 0; i < 3; i++ {
		if err := s.Step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if s.Generation() != 0 {
		t.Errorf("generation after clear = %d, want 0", s.Generation())
	}
	if s.Population() != 0 {
		t.Errorf("population after clear = %d, want 0", s.Population())
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("phase after clear = %v, want idle", s.Phase())
	}
}

func TestRandomize(t *testing.T) {
	a := newLife(t, 16, 16, automaton.Wrap)
	b := newLife(t, 16, 16, automaton.Wrap)

	if err := a.Randomize(42, 0.5); err != nil {
		t.Fatalf("randomize: %v", err)
	}
	if err := b.Randomize(42, 0.5); err != nil {
		t.Fatalf("randomize: %v", err)
	}

	var fa, fb automaton.Frame
	a.Snapshot(&fa)
	b.Snapshot(&fb)
	for i := range fa.Cells {
		if fa.Cells[i] != fb.Cells[i] {
			t.Fatal("same seed should produce the same board")
		}
	}

	if err := b.Randomize(43, 0.5); err != nil {
		t.Fatalf("randomize: %v", err)
	}
	b.Snapshot(&fb)
	same := true
	for i := range fa.Cells {
		if fa.Cells[i] != fb.Cells[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds should produce different boards")
	}

	if err := b.Randomize(7, 0); err != nil {
		t.Fatalf("randomize: %v", err)
	}
	if b.Population() != 0 {
		t.Errorf("density 0 population = %d, want 0", b.Population())
	}
	if err := b.Randomize(7, 1); err != nil {
		t.Fatalf("randomize: %v", err)
	}
	if b.Population() != 256 {
		t.Errorf("density 1 population = %d, want 256", b.Population())
	}
}

func TestMachineRule(t *testing.T) {
	m, err := NewMachine[cells.Binary]("life", 8, 8, automaton.DeadBorder)
	if err != nil {
		t.Fatalf("new machine: %v", err)
	}
	if m.Rule() != "life" {
		t.Errorf("rule = %q, want %q", m.Rule(), "life")
	}
	if m.Width() != 8 || m.Height() != 8 {
		t.Errorf("size = %dx%d, want 8x8", m.Width(), m.Height())
	}
}

func TestInvalidDimensions(t *testing.T) {
	_, err := New[cells.Binary](0, 5, automaton.DeadBorder)
	if !errors.Is(err, automaton.ErrInvalidDimensions) {
		t.Errorf("err = %v, want ErrInvalidDimensions", err)
	}
}
