package metrics

import (
	"github.com/san-kum/lifesim/internal/automaton"
)

// Activity counts cells that flipped between alive and dead from one
// observed frame to the next. Value reports the mean flips per step; a
// board whose activity reaches zero has frozen into still lifes.
type Activity struct {
	name    string
	prev    []uint8
	primed  bool
	sum     float64
	last    int
	samples int
}

func NewActivity() *Activity {
	return &Activity{name: "activity"}
}

func (a *Activity) Name() string { return a.name }

func (a *Activity) Observe(step int, f *automaton.Frame) {
	if a.primed && len(a.prev) == len(f.Cells) {
		flips := 0
		for i, c := range f.Cells {
			if automaton.LiveClass(c) != automaton.LiveClass(a.prev[i]) {
				flips++
			}
		}
		a.last = flips
		a.sum += float64(flips)
		a.samples++
	}
	a.prev = append(a.prev[:0], f.Cells...)
	a.primed = true
}

func (a *Activity) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.sum / float64(a.samples)
}

// Last returns the flip count of the most recent transition.
func (a *Activity) Last() int { return a.last }

func (a *Activity) Reset() {
	a.prev = a.prev[:0]
	a.primed = false
	a.sum = 0
	a.last = 0
	a.samples = 0
}
