package telemetry

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
)

// CensusWindow holds a per-material cell count taken at one tick, plus
// summary statistics of how evenly cells are distributed across the
// registered materials that are actually present. This replaces the
// teacher's prey/predator WindowStats with the falling-sand analogue:
// there is no births/deaths/bites model here, only "how many cells of
// each material exist right now."
type CensusWindow struct {
	Tick      int64          `csv:"tick"`
	SimTime   float64        `csv:"sim_time"`
	Counts    map[string]int `csv:"-"`
	TotalLive int            `csv:"total_live"` // sum of every count in Counts, void and stone included

	// Summary statistics (gonum/stat) over the per-material counts of
	// whichever materials have at least one live cell this window.
	MeanPerMaterial   float64 `csv:"mean_per_material"`
	StdDevPerMaterial float64 `csv:"stddev_per_material"`
	CoeffOfVariation  float64 `csv:"coeff_of_variation"`
}

// CensusRow is the flat shape gocsv marshals — CensusWindow's Counts map
// does not serialize directly, so a row carries only the totals and
// summary statistics; per-material counts are not exported.
type CensusRow struct {
	Tick              int64   `csv:"tick"`
	SimTime           float64 `csv:"sim_time"`
	TotalLive         int     `csv:"total_live"`
	MeanPerMaterial   float64 `csv:"mean_per_material"`
	StdDevPerMaterial float64 `csv:"stddev_per_material"`
	CoeffOfVariation  float64 `csv:"coeff_of_variation"`
}

// ComputeCensus builds a CensusWindow from a material-name -> count map
// (as produced by scanning the grid). TotalLive sums every count in the
// map; no material, void and stone included, is excluded from it.
func ComputeCensus(tick int64, simTime float64, counts map[string]int) CensusWindow {
	values := make([]float64, 0, len(counts))
	total := 0
	for _, c := range counts {
		total += c
		if c > 0 {
			values = append(values, float64(c))
		}
	}

	w := CensusWindow{
		Tick:      tick,
		SimTime:   simTime,
		Counts:    counts,
		TotalLive: total,
	}

	if len(values) == 0 {
		return w
	}

	mean, std := stat.MeanStdDev(values, nil)
	w.MeanPerMaterial = mean
	w.StdDevPerMaterial = std
	if mean != 0 {
		w.CoeffOfVariation = std / mean
	}
	return w
}

// LogValue implements slog.LogValuer for structured logging.
func (w CensusWindow) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("tick", w.Tick),
		slog.Float64("sim_time", w.SimTime),
		slog.Int("total_live", w.TotalLive),
		slog.Float64("mean_per_material", w.MeanPerMaterial),
		slog.Float64("stddev_per_material", w.StdDevPerMaterial),
		slog.Float64("coeff_of_variation", w.CoeffOfVariation),
	)
}

// LogStats logs the census window using slog, mirroring the teacher's
// WindowStats.LogStats shape.
func (w CensusWindow) LogStats() {
	slog.Info("census", "window", w)
}

// ToRow flattens a CensusWindow into the struct gocsv understands.
func (w CensusWindow) ToRow() CensusRow {
	return CensusRow{
		Tick:              w.Tick,
		SimTime:           w.SimTime,
		TotalLive:         w.TotalLive,
		MeanPerMaterial:   w.MeanPerMaterial,
		StdDevPerMaterial: w.StdDevPerMaterial,
		CoeffOfVariation:  w.CoeffOfVariation,
	}
}

// CensusExporter collects CensusWindow rows in memory; Flush writes all
// of them, under one header line, to a CSV file.
type CensusExporter struct {
	path   string
	rows   []CensusRow
}

// NewCensusExporter returns an exporter that accumulates rows in memory
// until Flush is called.
func NewCensusExporter(path string) *CensusExporter {
	return &CensusExporter{path: path}
}

// Append records one window for later export.
func (e *CensusExporter) Append(w CensusWindow) {
	e.rows = append(e.rows, w.ToRow())
}

// Flush writes every accumulated row to the exporter's CSV file,
// overwriting any previous contents.
func (e *CensusExporter) Flush() error {
	f, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("create census csv %s: %w", e.path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&e.rows, f); err != nil {
		return fmt.Errorf("write census csv %s: %w", e.path, err)
	}
	return nil
}
