package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth       = 64
	DefaultHeight      = 36
	DefaultRule        = "life"
	DefaultBoundary    = "border"
	DefaultFill        = "random"
	DefaultDensity     = 0.25
	DefaultSteps       = 200
	DefaultStepMS      = 120
	DefaultTheme       = "retro"
	DefaultRenderer    = "blocks"
	DefaultChartHeight = 8
)

// Fill modes for the initial board.
const (
	FillDead    = "dead"
	FillRandom  = "random"
	FillPattern = "pattern"
)

type Config struct {
	Grid GridConfig `yaml:"grid"`
	Run  RunConfig  `yaml:"run"`
	Init InitConfig `yaml:"init"`
	UI   UIConfig   `yaml:"ui"`
}

type GridConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Rule     string `yaml:"rule"`
	Boundary string `yaml:"boundary"`
}

type RunConfig struct {
	Steps  int   `yaml:"steps"`
	StepMS int   `yaml:"step_ms"`
	Seed   int64 `yaml:"seed"`
}

// InitConfig describes the starting board. AtX/AtY place a pattern
// fill; -1 centers it.
type InitConfig struct {
	Fill    string  `yaml:"fill"`
	Density float64 `yaml:"density"`
	Pattern string  `yaml:"pattern"`
	AtX     int     `yaml:"at_x"`
	AtY     int     `yaml:"at_y"`
}

type UIConfig struct {
	Theme       string `yaml:"theme"`
	Renderer    string `yaml:"renderer"`
	ChartHeight int    `yaml:"chart_height"`
}

func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Width:    DefaultWidth,
			Height:   DefaultHeight,
			Rule:     DefaultRule,
			Boundary: DefaultBoundary,
		},
		Run: RunConfig{
			Steps:  DefaultSteps,
			StepMS: DefaultStepMS,
			Seed:   0,
		},
		Init: InitConfig{
			Fill:    DefaultFill,
			Density: DefaultDensity,
			AtX:     -1,
			AtY:     -1,
		},
		UI: UIConfig{
			Theme:       DefaultTheme,
			Renderer:    DefaultRenderer,
			ChartHeight: DefaultChartHeight,
		},
	}
}

// Load reads a YAML config. Keys absent from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "write config %s", path)
}

func (c *Config) Validate() error {
	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Run.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", c.Run.Steps)
	}
	if c.Run.StepMS < 1 {
		return fmt.Errorf("step interval must be at least 1ms, got %d", c.Run.StepMS)
	}
	if c.Init.Density < 0 || c.Init.Density > 1 {
		return fmt.Errorf("density must be in [0, 1], got %f", c.Init.Density)
	}
	switch c.Init.Fill {
	case FillDead, FillRandom, FillPattern:
	default:
		return fmt.Errorf("unknown fill mode: %s", c.Init.Fill)
	}
	if c.Init.Fill == FillPattern && c.Init.Pattern == "" {
		return fmt.Errorf("pattern fill needs a pattern name")
	}
	return nil
}
