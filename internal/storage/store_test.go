package storage

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/resonance/internal/channel"
	"github.com/san-kum/resonance/internal/nuclide"
	"github.com/san-kum/resonance/internal/spingroup"
)

func smallGroup(t *testing.T) *spingroup.Group {
	t.Helper()

	elastic, err := channel.NewElastic(
		nuclide.New("n", 1, 1), nuclide.New("181Ta", 181, 73),
		3, 1, 0, 0.2,
		channel.Widths{Amplitudes: []float64{106.78913185, 108.99600881}},
	)
	if err != nil {
		t.Fatalf("elastic channel: %v", err)
	}
	capture, err := channel.NewCapture(
		nuclide.New("g", 0, 0), nuclide.NewIsotope("182Ta", 182, 73, 6.8e6),
		3, 1, 1, 0.2, 0,
		channel.Widths{Amplitudes: []float64{2.51487027e-06, 2.49890268e-06}},
	)
	if err != nil {
		t.Fatalf("capture channel: %v", err)
	}

	grid := floats.Span(make([]float64, 11), 0.9e6, 1.2e6)
	g, err := spingroup.New([]float64{1e6, 1.1e6}, elastic, []channel.Channel{capture}, grid)
	if err != nil {
		t.Fatalf("group: %v", err)
	}
	return g
}

func TestSaveListLoad(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	g := smallGroup(t)
	runID, err := store.Save("ta181", g)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("run count = %d, want 1", len(runs))
	}
	meta := runs[0]
	if meta.ID != runID || meta.Name != "ta181" {
		t.Errorf("metadata = %q/%q, want %q/ta181", meta.ID, meta.Name, runID)
	}
	if meta.GridPoints != 11 || len(meta.Channels) != 2 {
		t.Errorf("grid points = %d, channels = %d, want 11, 2", meta.GridPoints, len(meta.Channels))
	}

	// the run ID stamp and the metadata timestamp come from one clock read
	stamp, err := strconv.ParseInt(strings.TrimPrefix(runID, "ta181_"), 10, 64)
	if err != nil {
		t.Fatalf("run ID %q has no parsable stamp: %v", runID, err)
	}
	if stamp != meta.Timestamp.Unix() {
		t.Errorf("run ID stamp = %d, metadata timestamp = %d", stamp, meta.Timestamp.Unix())
	}

	header, cols, err := store.LoadCrossSections(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(header) != 4 { // energy, total, channel_0, channel_1
		t.Fatalf("header = %v, want 4 columns", header)
	}
	if len(cols[0]) != 11 {
		t.Fatalf("row count = %d, want 11", len(cols[0]))
	}

	grid := g.Grid()
	total := g.TotalCrossSection()
	for e := range grid {
		if math.Abs(cols[0][e]-grid[e]) > 1e-3 {
			t.Errorf("energy[%d] = %g, want %g", e, cols[0][e], grid[e])
		}
		if math.Abs(cols[1][e]-total[e]) > 1e-9*math.Abs(total[e])+1e-15 {
			t.Errorf("total[%d] = %g, want %g", e, cols[1][e], total[e])
		}
	}
}

func TestListEmpty(t *testing.T) {
	store := New(t.TempDir() + "/missing")
	runs, err := store.List()
	if err != nil {
		t.Fatalf("list on missing dir: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("run count = %d, want 0", len(runs))
	}
}
