package metrics

import (
	"github.com/san-kum/lifesim/internal/automaton"
)

// Population tracks the live-cell count over a run. Value reports an
// exponential moving average so one noisy generation does not dominate;
// the raw latest and peak counts stay available through getters.
type Population struct {
	name    string
	alpha   float64
	ema     float64
	latest  int
	peak    int
	samples int
}

func NewPopulation() *Population {
	return &Population{
		name:  "population",
		alpha: 0.1,
	}
}

func (p *Population) Name() string { return p.name }

func (p *Population) Observe(step int, f *automaton.Frame) {
	pop := f.Population
	if p.samples == 0 {
		p.ema = float64(pop)
	} else {
		p.ema = (1-p.alpha)*p.ema + p.alpha*float64(pop)
	}
	p.latest = pop
	if pop > p.peak {
		p.peak = pop
	}
	p.samples++
}

func (p *Population) Value() float64 {
	return p.ema
}

func (p *Population) Latest() int { return p.latest }
func (p *Population) Peak() int   { return p.peak }

func (p *Population) Reset() {
	p.ema = 0
	p.latest = 0
	p.peak = 0
	p.samples = 0
}
