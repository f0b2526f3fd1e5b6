package sim

// Census is one step's vital counts, diffed against the prior frame.
type Census struct {
	Step       int `json:"step"`
	Population int `json:"population"`
	Births     int `json:"births"`
	Deaths     int `json:"deaths"`
}

// PopulationSeries extracts the population column for plots and
// spectral analysis.
func PopulationSeries(cs []Census) []float64 {
	out := make([]float64, len(cs))
	for i, c := range cs {
		out[i] = float64(c.Population)
	}
	return out
}

// ActivitySeries extracts births plus deaths per step.
func ActivitySeries(cs []Census) []float64 {
	out := make([]float64, len(cs))
	for i, c := range cs {
		out[i] = float64(c.Births + c.Deaths)
	}
	return out
}
