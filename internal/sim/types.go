package sim

import (
	"time"

	"github.com/san-kum/lifesim/internal/automaton"
)

// Phase is the simulator's edit gate. Edits are accepted only while
// idle; a generation in progress rejects them.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseStepping
)

func (p Phase) String() string {
	if p == PhaseStepping {
		return "stepping"
	}
	return "idle"
}

// Machine is the rule-agnostic surface of a simulator, shared by the
// registry, the runner and the drivers.
type Machine interface {
	Rule() string
	Width() int
	Height() int
	Boundary() automaton.Boundary
	Generation() uint64
	Phase() Phase
	Population() int

	Step() error
	Toggle(x, y int) error
	SetAlive(x, y int, alive bool) error
	Clear() error
	Randomize(seed int64, density float64) error

	Snapshot(f *automaton.Frame)
}

// Metric observes frames during a run and reduces them to one value.
type Metric interface {
	Name() string
	Observe(step int, f *automaton.Frame)
	Value() float64
	Reset()
}

// Observer receives every frame of a run.
type Observer interface {
	OnStep(step int, f *automaton.Frame)
}

// RunConfig bounds a headless run. Stop, when set, is consulted after
// every step and ends the run early.
type RunConfig struct {
	Steps int
	Stop  func(step int, f *automaton.Frame) bool
}

// Result collects a run's census series and metric values.
type Result struct {
	Steps   int
	Census  []Census
	Metrics map[string]float64
	Elapsed time.Duration
	Stopped bool
}
