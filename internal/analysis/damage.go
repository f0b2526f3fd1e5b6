package analysis

import (
	"math"
	"time"

	"github.com/san-kum/lifesim/internal/automaton"
	"github.com/san-kum/lifesim/internal/sim"
)

// Damage records how a one-cell perturbation propagates through an
// otherwise identical board. A rule whose damage keeps growing is
// sensitive to initial conditions; one whose damage heals is not.
type Damage struct {
	Distance []int   // Hamming distance after each step
	Rate     float64 // mean log growth of the distance per step
	Healed   bool    // the twins reconverged
}

// DamageSpread runs two machines from the same seed, flips the center
// cell of one, and measures their Hamming distance over time.
//
// Method:
//  1. Build twin boards from one seed
//  2. Perturb a single cell on one twin
//  3. Step both in lockstep and record their divergence
//  4. rate = (1/t) * ln(d(t)/d(0)) with d(0) = 1
func DamageSpread(build func() (sim.Machine, error), seed int64, density float64, steps int) (*Damage, error) {
	// The twins must share one seed; resolve a clock seed here rather
	// than letting each Randomize draw its own.
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a, err := build()
	if err != nil {
		return nil, err
	}
	b, err := build()
	if err != nil {
		return nil, err
	}

	if err := a.Randomize(seed, density); err != nil {
		return nil, err
	}
	if err := b.Randomize(seed, density); err != nil {
		return nil, err
	}
	if err := b.Toggle(b.Width()/2, b.Height()/2); err != nil {
		return nil, err
	}

	d := &Damage{Distance: make([]int, 0, steps)}

	var fa, fb automaton.Frame
	for i := 0; i < steps; i++ {
		if err := a.Step(); err != nil {
			return nil, err
		}
		if err := b.Step(); err != nil {
			return nil, err
		}

		a.Snapshot(&fa)
		b.Snapshot(&fb)

		dist := hamming(&fa, &fb)
		d.Distance = append(d.Distance, dist)

		// Identical boards evolve identically from here on.
		if dist == 0 {
			d.Healed = true
			break
		}
	}

	if last := len(d.Distance); !d.Healed && last > 0 && d.Distance[last-1] > 1 {
		d.Rate = math.Log(float64(d.Distance[last-1])) / float64(last)
	}

	return d, nil
}

func hamming(a, b *automaton.Frame) int {
	dist := 0
	for i := range a.Cells {
		if automaton.LiveClass(a.Cells[i]) != automaton.LiveClass(b.Cells[i]) {
			dist++
		}
	}
	return dist
}
