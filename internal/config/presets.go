package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		Grid: GridConfig{Width: 64, Height: 36, Rule: "life", Boundary: "border"},
		Run:  RunConfig{Steps: 200, StepMS: 300},
		Init: InitConfig{Fill: FillDead, AtX: -1, AtY: -1},
		UI:   UIConfig{Theme: "retro", Renderer: "blocks", ChartHeight: 8},
	},
	"soup": {
		Grid: GridConfig{Width: 96, Height: 48, Rule: "life", Boundary: "wrap"},
		Run:  RunConfig{Steps: 500, StepMS: 80},
		Init: InitConfig{Fill: FillRandom, Density: 0.33, AtX: -1, AtY: -1},
		UI:   UIConfig{Theme: "retro", Renderer: "blocks", ChartHeight: 8},
	},
	"glider": {
		Grid: GridConfig{Width: 40, Height: 24, Rule: "life", Boundary: "wrap"},
		Run:  RunConfig{Steps: 400, StepMS: 120},
		Init: InitConfig{Fill: FillPattern, Pattern: "glider", AtX: 1, AtY: 1},
		UI:   UIConfig{Theme: "retro", Renderer: "blocks", ChartHeight: 8},
	},
	"brain": {
		Grid: GridConfig{Width: 96, Height: 48, Rule: "brain", Boundary: "wrap"},
		Run:  RunConfig{Steps: 500, StepMS: 60},
		Init: InitConfig{Fill: FillRandom, Density: 0.18, AtX: -1, AtY: -1},
		UI:   UIConfig{Theme: "ocean", Renderer: "blocks", ChartHeight: 8},
	},
	"highlife": {
		Grid: GridConfig{Width: 80, Height: 44, Rule: "highlife", Boundary: "wrap"},
		Run:  RunConfig{Steps: 500, StepMS: 100},
		Init: InitConfig{Fill: FillRandom, Density: 0.22, AtX: -1, AtY: -1},
		UI:   UIConfig{Theme: "retro", Renderer: "blocks", ChartHeight: 8},
	},
	"seeds": {
		Grid: GridConfig{Width: 96, Height: 48, Rule: "seeds", Boundary: "wrap"},
		Run:  RunConfig{Steps: 300, StepMS: 60},
		Init: InitConfig{Fill: FillRandom, Density: 0.05, AtX: -1, AtY: -1},
		UI:   UIConfig{Theme: "minimal", Renderer: "blocks", ChartHeight: 8},
	},
}

// GetPreset returns a copy of the named preset, nil if unknown. The
// copy keeps flag overrides from writing back into the catalog.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
