package sim

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Ensemble runs the same configuration across consecutive seeds, one
// fresh machine per run. The engine itself stays single-threaded;
// concurrency lives only across independent machines.
type Ensemble struct {
	build     func() (Machine, error)
	numRuns   int
	seedStart int64
	density   float64
	cfg       RunConfig
}

func NewEnsemble(build func() (Machine, error), numRuns int, seedStart int64, density float64, cfg RunConfig) *Ensemble {
	return &Ensemble{
		build:     build,
		numRuns:   numRuns,
		seedStart: seedStart,
		density:   density,
		cfg:       cfg,
	}
}

// Run executes every seed and returns results in seed order. The first
// failure cancels the remaining runs.
func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < e.numRuns; i++ {
		g.Go(func() error {
			m, err := e.build()
			if err != nil {
				return err
			}
			if err := m.Randomize(e.seedStart+int64(i), e.density); err != nil {
				return err
			}
			r, err := NewRunner(m).Run(ctx, e.cfg)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
