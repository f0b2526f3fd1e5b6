package analysis

import (
	"context"
	"strings"

	"github.com/san-kum/lifesim/internal/sim"
)

// DensityPoint holds the outcomes observed at one initial fill density.
type DensityPoint struct {
	Density  float64
	Survival []float64 // final population fraction, one per seed
}

// DensitySweep maps how a rule's long-run population depends on the
// initial fill density. Each density is run across several seeds; the
// recorded value is the surviving fraction of the board after the run.
//
// Parameters:
//   - build: fresh machine per run
//   - lo, hi: density range to sweep
//   - points: number of density values to test
//   - runs: seeds per density value
//   - steps: generations per run
func DensitySweep(
	ctx context.Context,
	build func() (sim.Machine, error),
	lo, hi float64,
	points, runs, steps int,
	seedStart int64,
) ([]DensityPoint, error) {
	probe, err := build()
	if err != nil {
		return nil, err
	}
	cellCount := float64(probe.Width() * probe.Height())

	if points <= 1 {
		points = 2 // Prevent division by zero
	}
	step := (hi - lo) / float64(points-1)

	results := make([]DensityPoint, 0, points)
	for i := 0; i < points; i++ {
		density := lo + float64(i)*step

		ens := sim.NewEnsemble(build, runs, seedStart, density, sim.RunConfig{Steps: steps})
		runResults, err := ens.Run(ctx)
		if err != nil {
			return nil, err
		}

		point := DensityPoint{Density: density, Survival: make([]float64, 0, runs)}
		for _, r := range runResults {
			pop := 0
			if n := len(r.Census); n > 0 {
				pop = r.Census[n-1].Population
			}
			point.Survival = append(point.Survival, float64(pop)/cellCount)
		}
		results = append(results, point)
	}

	return results, nil
}

// DensityToASCII scatters sweep outcomes on a text canvas, densities
// left to right and survival fractions bottom to top.
func DensityToASCII(data []DensityPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	var minVal, maxVal float64
	foundFirst := false
	for _, p := range data {
		for _, v := range p.Survival {
			if !foundFirst {
				minVal, maxVal = v, v
				foundFirst = true
			} else {
				if v < minVal {
					minVal = v
				}
				if v > maxVal {
					maxVal = v
				}
			}
		}
	}
	if !foundFirst {
		return ""
	}

	if maxVal == minVal {
		maxVal = minVal + 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i, p := range data {
		col := i * width / len(data)
		if col >= width {
			col = width - 1
		}

		for _, v := range p.Survival {
			row := height - 1 - int((v-minVal)/(maxVal-minVal)*float64(height-1))
			if row >= 0 && row < height && col >= 0 && col < width {
				canvas[row][col] = '•'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
