package runlog

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/san-kum/lifesim/internal/sim"
)

type ExportData struct {
	ID       string             `json:"id"`
	Rule     string             `json:"rule"`
	Width    int                `json:"width"`
	Height   int                `json:"height"`
	Boundary string             `json:"boundary"`
	Seed     int64              `json:"seed"`
	Steps    int                `json:"steps"`
	Census   []sim.Census       `json:"census"`
	Metrics  map[string]float64 `json:"metrics"`
}

func exportData(meta *RunMetadata, census []sim.Census) ExportData {
	return ExportData{
		ID:       meta.ID,
		Rule:     meta.Rule,
		Width:    meta.Width,
		Height:   meta.Height,
		Boundary: meta.Boundary,
		Seed:     meta.Seed,
		Steps:    meta.Steps,
		Census:   census,
		Metrics:  meta.Metrics,
	}
}

func writeExport(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportJSON writes a full run to path.
func ExportJSON(path string, meta *RunMetadata, census []sim.Census) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer file.Close()

	return errors.Wrapf(writeExport(file, exportData(meta, census)), "write %s", path)
}

// ExportJSONStdout dumps a full run to standard output.
func ExportJSONStdout(meta *RunMetadata, census []sim.Census) error {
	return writeExport(os.Stdout, exportData(meta, census))
}
