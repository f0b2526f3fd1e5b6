package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/lifesim/internal/automaton"
)

// Runner drives a machine headless, recording a census per step and
// feeding metrics and observers. The machine paces nothing; the runner
// steps as fast as it can.
type Runner struct {
	m         Machine
	metrics   []Metric
	observers []Observer
	pool      *FramePool
}

func NewRunner(m Machine) *Runner {
	return &Runner{m: m, pool: NewFramePool()}
}

func (r *Runner) AddMetric(mt Metric)    { r.metrics = append(r.metrics, mt) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run advances cfg.Steps generations. The context is checked between
// steps; cancellation returns what was recorded so far together with
// the context error.
func (r *Runner) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if cfg.Steps < 0 {
		return nil, fmt.Errorf("steps must be non-negative, got %d", cfg.Steps)
	}

	result := &Result{
		Census:  make([]Census, 0, cfg.Steps),
		Metrics: make(map[string]float64),
	}

	for _, mt := range r.metrics {
		mt.Reset()
	}

	prev := r.pool.Get()
	cur := r.pool.Get()
	defer r.pool.Put(prev)
	defer r.pool.Put(cur)

	r.m.Snapshot(prev)
	start := time.Now()

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			result.Elapsed = time.Since(start)
			return result, ctx.Err()
		default:
		}

		if err := r.m.Step(); err != nil {
			result.Elapsed = time.Since(start)
			return result, err
		}
		result.Steps++

		r.m.Snapshot(cur)

		births, deaths := diff(prev, cur)
		result.Census = append(result.Census, Census{
			Step:       result.Steps,
			Population: cur.Population,
			Births:     births,
			Deaths:     deaths,
		})

		for _, mt := range r.metrics {
			mt.Observe(result.Steps, cur)
		}
		for _, obs := range r.observers {
			obs.OnStep(result.Steps, cur)
		}

		if cfg.Stop != nil && cfg.Stop(result.Steps, cur) {
			result.Stopped = true
			break
		}

		prev, cur = cur, prev
	}

	result.Elapsed = time.Since(start)
	for _, mt := range r.metrics {
		result.Metrics[mt.Name()] = mt.Value()
	}
	return result, nil
}

func diff(prev, cur *automaton.Frame) (births, deaths int) {
	for i := range cur.Cells {
		was := automaton.LiveClass(prev.Cells[i])
		is := automaton.LiveClass(cur.Cells[i])
		switch {
		case is && !was:
			births++
		case was && !is:
			deaths++
		}
	}
	return births, deaths
}
