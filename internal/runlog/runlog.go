package runlog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/san-kum/lifesim/internal/sim"
)

// Store writes one directory per run: metadata.json with the run's
// configuration and metric values, census.csv with the per-step counts.
// Runs are observability artifacts, not reloadable boards.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return errors.Wrapf(os.MkdirAll(s.baseDir, 0755), "create run log %s", s.baseDir)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Rule      string             `json:"rule"`
	Timestamp time.Time          `json:"timestamp"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Boundary  string             `json:"boundary"`
	Seed      int64              `json:"seed"`
	Steps     int                `json:"steps"`
	ElapsedMS int64              `json:"elapsed_ms"`
	Stopped   bool               `json:"stopped"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save records one finished run and returns its ID.
func (s *Store) Save(m sim.Machine, seed int64, result *sim.Result) (string, error) {
	// Same-second saves of the same rule get the next free slot.
	ts := time.Now().Unix()
	runID := fmt.Sprintf("%s_%d", m.Rule(), ts)
	for {
		if _, err := os.Stat(filepath.Join(s.baseDir, runID)); os.IsNotExist(err) {
			break
		}
		ts++
		runID = fmt.Sprintf("%s_%d", m.Rule(), ts)
	}

	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", errors.Wrapf(err, "create run dir %s", runDir)
	}

	meta := RunMetadata{
		ID:        runID,
		Rule:      m.Rule(),
		Timestamp: time.Now(),
		Width:     m.Width(),
		Height:    m.Height(),
		Boundary:  m.Boundary().String(),
		Seed:      seed,
		Steps:     result.Steps,
		ElapsedMS: result.Elapsed.Milliseconds(),
		Stopped:   result.Stopped,
		Metrics:   result.Metrics,
	}

	if err := s.writeMetadata(runDir, &meta); err != nil {
		return "", err
	}
	if err := s.writeCensus(runDir, result.Census); err != nil {
		return "", err
	}
	return runID, nil
}

func (s *Store) writeMetadata(runDir string, meta *RunMetadata) error {
	path := filepath.Join(runDir, "metadata.json")
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return errors.Wrapf(enc.Encode(meta), "write %s", path)
}

func (s *Store) writeCensus(runDir string, census []sim.Census) error {
	path := filepath.Join(runDir, "census.csv")
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"step", "population", "births", "deaths"}); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	for _, c := range census {
		row := []string{
			strconv.Itoa(c.Step),
			strconv.Itoa(c.Population),
			strconv.Itoa(c.Births),
			strconv.Itoa(c.Deaths),
		}
		if err := w.Write(row); err != nil {
			return errors.Wrapf(err, "write %s", path)
		}
	}
	return nil
}

// List returns metadata for every readable run. Corrupt or foreign
// directories are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, errors.Wrapf(err, "read run log %s", s.baseDir)
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, errors.Wrapf(err, "read run %s", runID)
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, "parse run %s", runID)
	}

	return &meta, nil
}

// LoadCensus reads a run's census series back. Malformed rows are
// skipped.
func (s *Store) LoadCensus(runID string) ([]sim.Census, error) {
	path := filepath.Join(s.baseDir, runID, "census.csv")
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read census of %s", runID)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parse census of %s", runID)
	}

	census := make([]sim.Census, 0, len(records))
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 4 {
			continue
		}

		var c sim.Census
		var convErr error
		for j, dst := range []*int{&c.Step, &c.Population, &c.Births, &c.Deaths} {
			v, err := strconv.Atoi(record[j])
			if err != nil {
				convErr = err
				break
			}
			*dst = v
		}
		if convErr != nil {
			continue
		}
		census = append(census, c)
	}

	return census, nil
}
