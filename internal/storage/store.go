// Package storage persists computed runs: per-run metadata plus the
// grid-aligned cross-section columns as CSV.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/resonance/internal/spingroup"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Timestamp  time.Time `json:"timestamp"`
	GridStart  float64   `json:"grid_start"`
	GridStop   float64   `json:"grid_stop"`
	GridPoints int       `json:"grid_points"`
	Resonances []float64 `json:"resonances"`
	Channels   []string  `json:"channels"`
}

// Save writes a run directory holding metadata.json and
// cross_sections.csv (energy, total, one column per channel).
func (s *Store) Save(name string, g *spingroup.Group) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", name, now.Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	grid := g.Grid()
	channels := g.Channels()

	labels := make([]string, len(channels))
	for i, ch := range channels {
		labels[i] = ch.Label()
	}

	meta := RunMetadata{
		ID:         runID,
		Name:       name,
		Timestamp:  now,
		GridStart:  grid[0],
		GridStop:   grid[len(grid)-1],
		GridPoints: len(grid),
		Resonances: g.ResonanceEnergies(),
		Channels:   labels,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "cross_sections.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)

	header := []string{"energy_ev", "total"}
	for i := range channels {
		header = append(header, fmt.Sprintf("channel_%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	total := g.TotalCrossSection()
	for e := range grid {
		row := []string{
			strconv.FormatFloat(grid[e], 'e', 9, 64),
			strconv.FormatFloat(total[e], 'e', 9, 64),
		}
		for i := range channels {
			row = append(row, strconv.FormatFloat(g.CrossSection(i)[e], 'e', 9, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	return runID, w.Error()
}

// List returns the metadata of all stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// LoadCrossSections reads a stored run back as named columns.
func (s *Store) LoadCrossSections(runID string) ([]string, [][]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "cross_sections.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("storage: run %s has no data rows", runID)
	}

	header := records[0]
	cols := make([][]float64, len(header))
	for i := range cols {
		cols[i] = make([]float64, 0, len(records)-1)
	}
	for _, rec := range records[1:] {
		for i, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("storage: run %s: %w", runID, err)
			}
			cols[i] = append(cols[i], v)
		}
	}
	return header, cols, nil
}
