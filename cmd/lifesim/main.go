package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cheggaaa/pb/v3"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/automaton"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/lab"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/pattern"
	"github.com/san-kum/lifesim/internal/render"
	"github.com/san-kum/lifesim/internal/runlog"
	"github.com/san-kum/lifesim/internal/sim"
	"github.com/san-kum/lifesim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir string

	width    int
	height   int
	boundary string
	fill     string
	density  float64
	patName  string
	atX      int
	atY      int
	steps    int
	stepMS   int
	seed     int64
	theme    string
	renderer string
	noSave   bool
	svgPath  string
	// Sweep and perturbation knobs
	runs      int
	densityLo float64
	densityHi float64
	points    int
	// Config file
	configFile string
	// Preset name
	preset string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lifesim",
		Short: "cellular automata lab for the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive board when no command given
			return playBoard(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lifesim", "data directory")

	playCmd := &cobra.Command{
		Use:   "play [rule]",
		Short: "interactive board",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playBoard,
	}
	playCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "board width")
	playCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "board height")
	playCmd.Flags().StringVar(&boundary, "boundary", config.DefaultBoundary, "edge policy (border, wrap)")
	playCmd.Flags().StringVar(&fill, "fill", config.DefaultFill, "initial fill (dead, random, pattern)")
	playCmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "random fill density")
	playCmd.Flags().StringVar(&patName, "pattern", "", "pattern to stamp (implies --fill pattern)")
	playCmd.Flags().IntVar(&atX, "at-x", -1, "pattern x position (-1 centers)")
	playCmd.Flags().IntVar(&atY, "at-y", -1, "pattern y position (-1 centers)")
	playCmd.Flags().IntVar(&stepMS, "interval", config.DefaultStepMS, "milliseconds per generation")
	playCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	playCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	playCmd.Flags().StringVar(&renderer, "renderer", config.DefaultRenderer, "board renderer (blocks, braille)")
	playCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	playCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	runCmd := &cobra.Command{
		Use:   "run [rule]",
		Short: "headless run with metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBoard,
	}
	runCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "board width")
	runCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "board height")
	runCmd.Flags().StringVar(&boundary, "boundary", config.DefaultBoundary, "edge policy (border, wrap)")
	runCmd.Flags().StringVar(&fill, "fill", config.DefaultFill, "initial fill (dead, random, pattern)")
	runCmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "random fill density")
	runCmd.Flags().StringVar(&patName, "pattern", "", "pattern to stamp (implies --fill pattern)")
	runCmd.Flags().IntVar(&atX, "at-x", -1, "pattern x position (-1 centers)")
	runCmd.Flags().IntVar(&atY, "at-y", -1, "pattern y position (-1 centers)")
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "generations to run")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip writing the run log")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the final board as SVG")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"runs"},
		Short:   "list runs",
		RunE:    listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run census",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of the population series",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	perturbCmd := &cobra.Command{
		Use:   "perturb [rule]",
		Short: "damage spreading from one flipped cell",
		Args:  cobra.ExactArgs(1),
		RunE:  perturbRule,
	}
	perturbCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "board width")
	perturbCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "board height")
	perturbCmd.Flags().StringVar(&boundary, "boundary", "wrap", "edge policy (border, wrap)")
	perturbCmd.Flags().Float64Var(&density, "density", 0.3, "random fill density")
	perturbCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "generations per run")
	perturbCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "first random seed")
	perturbCmd.Flags().IntVar(&runs, "runs", 8, "independent runs")

	sweepCmd := &cobra.Command{
		Use:   "sweep [rule]",
		Short: "survival across initial densities",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepRule,
	}
	sweepCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "board width")
	sweepCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "board height")
	sweepCmd.Flags().StringVar(&boundary, "boundary", "wrap", "edge policy (border, wrap)")
	sweepCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "generations per run")
	sweepCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "first random seed")
	sweepCmd.Flags().IntVar(&runs, "runs", 8, "seeds per density")
	sweepCmd.Flags().Float64Var(&densityLo, "from", 0.0, "lowest density")
	sweepCmd.Flags().Float64Var(&densityHi, "to", 0.6, "highest density")
	sweepCmd.Flags().IntVar(&points, "points", 13, "density values to test")

	compareCmd := &cobra.Command{
		Use:   "compare [rule1] [rule2] ...",
		Short: "compare rules, or one rule across boundary policies",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareRules,
	}
	compareCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "board width")
	compareCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "board height")
	compareCmd.Flags().StringVar(&boundary, "boundary", "wrap", "edge policy (border, wrap)")
	compareCmd.Flags().Float64Var(&density, "density", 0.3, "random fill density")
	compareCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "generations per run")
	compareCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "first random seed")
	compareCmd.Flags().IntVar(&runs, "runs", 8, "runs per case")

	benchCmd := &cobra.Command{
		Use:   "bench [rule]",
		Short: "benchmark step throughput, all rules unless one is named",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchRule,
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list the pattern catalog",
		RunE:  listPatterns,
	}

	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "list available rules",
		RunE:  listRegisteredRules,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listAllPresets,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run census to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportFullJSON,
	}

	rootCmd.AddCommand(playCmd, runCmd, listCmd, plotCmd, analyzeCmd, perturbCmd, sweepCmd, compareCmd, benchCmd, patternsCmd, rulesCmd, presetsCmd, exportCmd, exportCSVCmd, exportJSONCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file, rule argument and explicit
// flags, in increasing precedence.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Grid.Rule = args[0]
	}

	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Grid.Width = width
	}
	if f.Changed("height") {
		cfg.Grid.Height = height
	}
	if f.Changed("boundary") {
		cfg.Grid.Boundary = boundary
	}
	if f.Changed("fill") {
		cfg.Init.Fill = fill
	}
	if f.Changed("density") {
		cfg.Init.Density = density
	}
	if f.Changed("pattern") {
		cfg.Init.Fill = config.FillPattern
		cfg.Init.Pattern = patName
	}
	if f.Changed("at-x") {
		cfg.Init.AtX = atX
	}
	if f.Changed("at-y") {
		cfg.Init.AtY = atY
	}
	if f.Changed("steps") {
		cfg.Run.Steps = steps
	}
	if f.Changed("interval") {
		cfg.Run.StepMS = stepMS
	}
	if f.Changed("theme") {
		cfg.UI.Theme = theme
	}
	if f.Changed("renderer") {
		cfg.UI.Renderer = renderer
	}
	// A zero config seed means take one from the clock.
	if f.Changed("seed") || cfg.Run.Seed == 0 {
		cfg.Run.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ruleConfig builds a config for the statistics commands straight from
// the flag values. These commands take no config file or preset.
func ruleConfig(rule string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Grid.Rule = rule
	cfg.Grid.Width = width
	cfg.Grid.Height = height
	cfg.Grid.Boundary = boundary
	cfg.Init.Fill = config.FillRandom
	cfg.Init.Density = density
	cfg.Run.Steps = steps
	cfg.Run.Seed = seed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func playBoard(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	m, err := lab.Build(lab.NewRegistry(), cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(m, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	st := runlog.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	m, err := lab.Build(lab.NewRegistry(), cfg)
	if err != nil {
		return err
	}

	stag := metrics.NewStagnation(0)
	runner := sim.NewRunner(m)
	runner.AddMetric(metrics.NewPopulation())
	runner.AddMetric(metrics.NewActivity())
	runner.AddMetric(stag)

	fmt.Printf("running %s on %dx%d (%s), seed %d\n",
		cfg.Grid.Rule, cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.Boundary, cfg.Run.Seed)

	bar := pb.StartNew(cfg.Run.Steps)
	rcfg := sim.RunConfig{
		Steps: cfg.Run.Steps,
		Stop: func(step int, f *automaton.Frame) bool {
			bar.Increment()
			// A settled or extinct board has nothing left to show.
			return stag.Settled() || f.Population == 0
		},
	}

	result, err := runner.Run(context.Background(), rcfg)
	bar.Finish()
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", result.Elapsed)
	if result.Stopped {
		if stag.Settled() {
			fmt.Printf("settled at generation %d with period %d\n", stag.SettledAt(), stag.Period())
		} else {
			fmt.Println("board died out")
		}
	}

	if !noSave {
		runID, err := st.Save(m, cfg.Run.Seed, result)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	if svgPath != "" {
		var f automaton.Frame
		m.Snapshot(&f)
		if err := os.WriteFile(svgPath, []byte(render.FrameToSVG(&f, 8)), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}

	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := runlog.New(dataDir)
	entries, err := st.List()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRULE\tTIME\tGRID\tBOUNDARY\tSEED\tSTEPS\tSTOPPED")

	for _, run := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%s\t%d\t%d\t%v\n",
			run.ID,
			run.Rule,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width,
			run.Height,
			run.Boundary,
			run.Seed,
			run.Steps,
			run.Stopped,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := runlog.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	census, err := st.LoadCensus(runID)
	if err != nil {
		return err
	}

	if len(census) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("rule: %s\n", meta.Rule)
	fmt.Printf("samples: %d\n\n", len(census))

	series := []struct {
		caption string
		pick    func(c sim.Census) float64
	}{
		{"population", func(c sim.Census) float64 { return float64(c.Population) }},
		{"births per generation", func(c sim.Census) float64 { return float64(c.Births) }},
		{"deaths per generation", func(c sim.Census) float64 { return float64(c.Deaths) }},
	}

	for _, s := range series {
		data := make([]float64, len(census))
		for i, c := range census {
			data[i] = s.pick(c)
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := runlog.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	census, err := st.LoadCensus(runID)
	if err != nil {
		return err
	}

	if len(census) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("rule: %s\n\n", meta.Rule)

	data := make([]float64, len(census))
	for i, c := range census {
		data[i] = float64(c.Population)
	}

	// Pad to at least 8 so short runs still yield a plottable spectrum.
	n := 8
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)

	ps := analysis.PowerSpectrum(padded)

	plotData := ps[:len(ps)/4]

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("population power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	if period := analysis.DominantPeriod(data); period > 0 {
		fmt.Printf("dominant period: %d generations\n", period)
	} else {
		fmt.Println("no dominant period in the population series")
	}

	// The board hash cycle catches oscillators whose population never
	// changes between phases.
	if v, ok := meta.Metrics["stagnation"]; ok && v > 0 {
		fmt.Printf("recorded board cycle: %.0f generations\n", v)
	}

	return nil
}

func perturbRule(cmd *cobra.Command, args []string) error {
	cfg, err := ruleConfig(args[0])
	if err != nil {
		return err
	}

	build, err := lab.Builder(lab.NewRegistry(), cfg)
	if err != nil {
		return err
	}

	fmt.Printf("damage spreading for %s (%dx%d %s, density %.2f)\n\n",
		cfg.Grid.Rule, cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.Boundary, cfg.Init.Density)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tSTEPS\tFINAL_DIST\tRATE\tHEALED")

	healed := 0
	var rateSum float64
	var first *analysis.Damage

	for i := 0; i < runs; i++ {
		runSeed := cfg.Run.Seed + int64(i)
		d, err := analysis.DamageSpread(build, runSeed, cfg.Init.Density, cfg.Run.Steps)
		if err != nil {
			return err
		}
		if first == nil {
			first = d
		}

		final := 0
		if len(d.Distance) > 0 {
			final = d.Distance[len(d.Distance)-1]
		}
		if d.Healed {
			healed++
		} else {
			rateSum += d.Rate
		}

		fmt.Fprintf(w, "%d\t%d\t%d\t%.4f\t%v\n", runSeed, len(d.Distance), final, d.Rate, d.Healed)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nhealed %d/%d runs\n", healed, runs)
	if healed < runs {
		fmt.Printf("mean spreading rate: %.4f\n", rateSum/float64(runs-healed))
	}

	if first != nil && len(first.Distance) > 1 {
		data := make([]float64, len(first.Distance))
		for i, v := range first.Distance {
			data[i] = float64(v)
		}
		fmt.Println()
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("hamming distance, first run"),
		)
		fmt.Println(graph)
	}

	return nil
}

func sweepRule(cmd *cobra.Command, args []string) error {
	cfg, err := ruleConfig(args[0])
	if err != nil {
		return err
	}

	build, err := lab.Builder(lab.NewRegistry(), cfg)
	if err != nil {
		return err
	}

	fmt.Printf("density sweep for %s (%dx%d %s, %d seeds per point)\n\n",
		cfg.Grid.Rule, cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.Boundary, runs)

	data, err := analysis.DensitySweep(context.Background(), build,
		densityLo, densityHi, points, runs, cfg.Run.Steps, cfg.Run.Seed)
	if err != nil {
		return err
	}

	fmt.Println(analysis.DensityToASCII(data, 70, 16))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DENSITY\tMEAN\tMIN\tMAX")
	for _, p := range data {
		mean, lo, hi := summarize(p.Survival)
		fmt.Fprintf(w, "%.3f\t%.3f\t%.3f\t%.3f\n", p.Density, mean, lo, hi)
	}
	return w.Flush()
}

func summarize(vals []float64) (mean, lo, hi float64) {
	if len(vals) == 0 {
		return 0, 0, 0
	}
	lo, hi = vals[0], vals[0]
	for _, v := range vals {
		mean += v
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return mean / float64(len(vals)), lo, hi
}

func compareRules(cmd *cobra.Command, args []string) error {
	cfg, err := ruleConfig(args[0])
	if err != nil {
		return err
	}

	reg := lab.NewRegistry()

	// One rule compares its boundary policies, several compare the rules.
	type compareCase struct {
		label string
		cfg   config.Config
	}
	var cases []compareCase
	if len(args) == 1 {
		for _, b := range []string{"border", "wrap"} {
			c := *cfg
			c.Grid.Rule = args[0]
			c.Grid.Boundary = b
			cases = append(cases, compareCase{args[0] + "/" + b, c})
		}
	} else {
		for _, name := range args {
			c := *cfg
			c.Grid.Rule = name
			cases = append(cases, compareCase{name, c})
		}
	}

	fmt.Printf("comparing on %dx%d, density %.2f, %d steps, %d runs each\n\n",
		cfg.Grid.Width, cfg.Grid.Height, cfg.Init.Density, cfg.Run.Steps, runs)
	fmt.Printf("%-16s  %10s  %10s  %10s  %10s\n", "case", "mean_pop", "min_pop", "max_pop", "time_ms")
	fmt.Println(strings.Repeat("-", 64))

	for _, cc := range cases {
		build, err := lab.Builder(reg, &cc.cfg)
		if err != nil {
			fmt.Printf("%-16s  error: %v\n", cc.label, err)
			continue
		}

		ens := sim.NewEnsemble(build, runs, cc.cfg.Run.Seed, cc.cfg.Init.Density,
			sim.RunConfig{Steps: cc.cfg.Run.Steps})

		start := time.Now()
		results, err := ens.Run(context.Background())
		elapsed := time.Since(start)
		if err != nil {
			fmt.Printf("%-16s  error: %v\n", cc.label, err)
			continue
		}

		finals := make([]float64, 0, len(results))
		for _, r := range results {
			if len(r.Census) > 0 {
				finals = append(finals, float64(r.Census[len(r.Census)-1].Population))
			}
		}
		mean, lo, hi := summarize(finals)

		fmt.Printf("%-16s  %10.1f  %10.0f  %10.0f  %10.2f\n",
			cc.label, mean, lo, hi, float64(elapsed.Microseconds())/1000)
	}

	return nil
}

func benchRule(cmd *cobra.Command, args []string) error {
	reg := lab.NewRegistry()
	rules := reg.ListRules()
	if len(args) == 1 {
		rules = args
	}

	sizes := []int{64, 128, 256}
	boundaries := []automaton.Boundary{automaton.DeadBorder, automaton.Wrap}
	const benchSteps = 200

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RULE\tGRID\tBOUNDARY\tSTEPS\tTIME\tSTEPS/SEC\tCELLS/SEC")

	for _, ruleName := range rules {
		for _, size := range sizes {
			for _, b := range boundaries {
				m, err := reg.Build(ruleName, size, size, b)
				if err != nil {
					return err
				}
				if err := m.Randomize(42, 0.3); err != nil {
					return err
				}

				result, err := sim.NewRunner(m).Run(context.Background(), sim.RunConfig{Steps: benchSteps})
				if err != nil {
					return err
				}

				stepsPerSec := float64(result.Steps) / result.Elapsed.Seconds()
				cellsPerSec := stepsPerSec * float64(size*size)

				fmt.Fprintf(w, "%s\t%dx%d\t%s\t%d\t%v\t%.0f\t%.2e\n",
					ruleName, size, size, b, result.Steps, result.Elapsed, stepsPerSec, cellsPerSec)
			}
		}
	}

	return w.Flush()
}

func listPatterns(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tCELLS\tDESCRIPTION")
	for _, p := range pattern.All() {
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%s\n", p.Name, p.Width(), p.Height(), len(p.Cells()), p.Desc)
	}
	return w.Flush()
}

func listRegisteredRules(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, r := range lab.NewRegistry().Rules() {
		fmt.Fprintf(w, "%s\t%s\n", r.Name, r.Desc)
	}
	return w.Flush()
}

func listAllPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRULE\tGRID\tBOUNDARY\tFILL\tSTEPS\tINTERVAL")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%s\t%s\t%d\t%dms\n",
			name, p.Grid.Rule, p.Grid.Width, p.Grid.Height, p.Grid.Boundary,
			p.Init.Fill, p.Run.Steps, p.Run.StepMS)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := runlog.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := runlog.New(dataDir)
	census, err := st.LoadCensus(args[0])
	if err != nil {
		return err
	}

	if len(census) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"step", "population", "births", "deaths"}); err != nil {
		return err
	}

	for _, c := range census {
		row := []string{
			strconv.Itoa(c.Step),
			strconv.Itoa(c.Population),
			strconv.Itoa(c.Births),
			strconv.Itoa(c.Deaths),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportFullJSON(cmd *cobra.Command, args []string) error {
	st := runlog.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	census, err := st.LoadCensus(args[0])
	if err != nil {
		return err
	}

	return runlog.ExportJSONStdout(meta, census)
}
