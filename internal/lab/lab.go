package lab

import (
	"fmt"

	"github.com/san-kum/lifesim/internal/automaton"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/pattern"
	"github.com/san-kum/lifesim/internal/sim"
)

// Build assembles a machine from a config: rule, geometry, boundary,
// then the initial fill.
func Build(reg *Registry, cfg *config.Config) (sim.Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := automaton.ParseBoundary(cfg.Grid.Boundary)
	if err != nil {
		return nil, err
	}
	m, err := reg.Build(cfg.Grid.Rule, cfg.Grid.Width, cfg.Grid.Height, b)
	if err != nil {
		return nil, err
	}
	if err := Fill(m, cfg); err != nil {
		return nil, err
	}
	return m, nil
}

// Fill applies the config's initial board to a machine.
func Fill(m sim.Machine, cfg *config.Config) error {
	switch cfg.Init.Fill {
	case config.FillDead:
		return m.Clear()
	case config.FillRandom:
		return m.Randomize(cfg.Run.Seed, cfg.Init.Density)
	case config.FillPattern:
		p, err := pattern.Find(cfg.Init.Pattern)
		if err != nil {
			return err
		}
		if err := m.Clear(); err != nil {
			return err
		}
		if cfg.Init.AtX < 0 || cfg.Init.AtY < 0 {
			return pattern.Center(m, p)
		}
		return pattern.Stamp(m, p, cfg.Init.AtX, cfg.Init.AtY)
	}
	return fmt.Errorf("unknown fill mode: %s", cfg.Init.Fill)
}

// Builder returns a factory producing fresh unfilled machines of the
// config's rule and geometry, for ensembles and sweeps.
func Builder(reg *Registry, cfg *config.Config) (func() (sim.Machine, error), error) {
	b, err := automaton.ParseBoundary(cfg.Grid.Boundary)
	if err != nil {
		return nil, err
	}
	rule, w, h := cfg.Grid.Rule, cfg.Grid.Width, cfg.Grid.Height
	if _, err := reg.Build(rule, w, h, b); err != nil {
		return nil, err
	}
	return func() (sim.Machine, error) {
		return reg.Build(rule, w, h, b)
	}, nil
}
