package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/lifesim/internal/automaton"
)

func frameOf(w, h int, live ...[2]int) *automaton.Frame {
	f := &automaton.Frame{
		Width:  w,
		Height: h,
		Cells:  make([]uint8, w*h),
	}
	for _, c := range live {
		f.Cells[c[1]*w+c[0]] = automaton.ClassAlive
		f.Population++
	}
	return f
}

func TestPopulationEMA(t *testing.T) {
	m := NewPopulation()

	m.Observe(1, frameOf(10, 10, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}))
	if m.Value() != 3 {
		t.Errorf("expected EMA seeded at 3, got %f", m.Value())
	}

	m.Observe(2, frameOf(10, 10))
	if math.Abs(m.Value()-2.7) > 1e-9 {
		t.Errorf("expected EMA 2.7, got %f", m.Value())
	}
	if m.Latest() != 0 {
		t.Errorf("expected latest 0, got %d", m.Latest())
	}
	if m.Peak() != 3 {
		t.Errorf("expected peak 3, got %d", m.Peak())
	}
}

func TestPopulationReset(t *testing.T) {
	m := NewPopulation()
	m.Observe(1, frameOf(4, 4, [2]int{0, 0}))
	m.Reset()
	if m.Value() != 0 || m.Latest() != 0 || m.Peak() != 0 {
		t.Error("expected zeroed metric after reset")
	}
}

func TestActivityCountsFlips(t *testing.T) {
	m := NewActivity()

	horizontal := frameOf(5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	vertical := frameOf(5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	m.Observe(1, horizontal)
	if m.Value() != 0 {
		t.Errorf("expected no activity after a single frame, got %f", m.Value())
	}

	m.Observe(2, vertical)
	if m.Last() != 4 {
		t.Errorf("expected 4 flips between blinker phases, got %d", m.Last())
	}
	if m.Value() != 4 {
		t.Errorf("expected mean activity 4, got %f", m.Value())
	}

	m.Observe(3, vertical)
	if m.Last() != 0 {
		t.Errorf("expected 0 flips on identical frames, got %d", m.Last())
	}
	if m.Value() != 2 {
		t.Errorf("expected mean activity 2, got %f", m.Value())
	}
}

func TestActivityIgnoresClassChanges(t *testing.T) {
	m := NewActivity()

	young := frameOf(3, 1)
	young.Cells[1] = 1
	young.Population = 1
	old := frameOf(3, 1)
	old.Cells[1] = 4
	old.Population = 1

	m.Observe(1, young)
	m.Observe(2, old)
	if m.Last() != 0 {
		t.Errorf("expected aging within live classes to count as 0 flips, got %d", m.Last())
	}
}

func TestStagnationStillLife(t *testing.T) {
	m := NewStagnation(16)

	block := frameOf(4, 4, [2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})
	m.Observe(1, block)
	if m.Settled() {
		t.Error("expected no cycle after one frame")
	}
	m.Observe(2, block)
	if !m.Settled() {
		t.Fatal("expected still life to settle")
	}
	if m.Period() != 1 {
		t.Errorf("expected period 1, got %d", m.Period())
	}
	if m.SettledAt() != 2 {
		t.Errorf("expected settled at step 2, got %d", m.SettledAt())
	}
}

func TestStagnationOscillator(t *testing.T) {
	m := NewStagnation(16)

	a := frameOf(5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	b := frameOf(5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	m.Observe(1, a)
	m.Observe(2, b)
	if m.Settled() {
		t.Error("expected no cycle before a repeat")
	}
	m.Observe(3, a)
	if !m.Settled() {
		t.Fatal("expected oscillator to settle")
	}
	if m.Period() != 2 {
		t.Errorf("expected period 2, got %d", m.Period())
	}
	if m.Value() != 2 {
		t.Errorf("expected value 2, got %f", m.Value())
	}
}

func TestStagnationWindowEviction(t *testing.T) {
	m := NewStagnation(2)

	a := frameOf(3, 1, [2]int{0, 0})
	b := frameOf(3, 1, [2]int{1, 0})
	c := frameOf(3, 1, [2]int{2, 0})

	for step, f := range []*automaton.Frame{a, b, c, a, b, c} {
		m.Observe(step+1, f)
	}
	if m.Settled() {
		t.Error("expected period-3 cycle to escape a window of 2")
	}
}

func TestStagnationReset(t *testing.T) {
	m := NewStagnation(16)
	f := frameOf(2, 2, [2]int{0, 0})
	m.Observe(1, f)
	m.Observe(2, f)
	if !m.Settled() {
		t.Fatal("expected settled before reset")
	}
	m.Reset()
	if m.Settled() || m.Period() != 0 || m.SettledAt() != -1 {
		t.Error("expected cleared detector after reset")
	}
	m.Observe(1, f)
	if m.Settled() {
		t.Error("expected fresh detector to need a repeat")
	}
}
