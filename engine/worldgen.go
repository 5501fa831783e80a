package engine

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/sandcell/evolution/grid"
	"github.com/sandcell/evolution/materials"
)

// WorldgenParams tunes the seeded terrain generator. The distilled
// specification says nothing about how a runnable world is populated
// beyond "world construction fills the border with stone" — this fills
// that gap the way the teacher's resource field seeds its initial
// nutrient layout: threshold a noise field against a few bands.
type WorldgenParams struct {
	Seed int64

	// FloorHeight is how many rows of stone sit above the bottom border.
	FloorHeight int

	// EarthHeight is how many rows of earth sit above the stone floor.
	// The band's height is the same at every x; noise only decides
	// which of its cells are gravel.
	EarthHeight int

	// GravelThreshold in [-1,1]: noise samples above this, within the
	// earth band, become gravel veins instead of earth.
	GravelThreshold float64

	// NoiseScale controls how fast the noise field varies across x; a
	// larger scale means smaller, denser features.
	NoiseScale float64
}

// DefaultWorldgenParams returns the parameters used by the CLI runner
// and scenario tests when nothing more specific is configured.
func DefaultWorldgenParams(seed int64) WorldgenParams {
	return WorldgenParams{
		Seed:            seed,
		FloorHeight:     40,
		EarthHeight:     80,
		GravelThreshold: 0.45,
		NoiseScale:      0.02,
	}
}

// Generate fills the interior of the grid with a stone floor, an earth
// band with gravel veins, and leaves everything above as void. The
// border wall written by New/fillBorder is left untouched.
func (e *Engine) Generate(params WorldgenParams) {
	noise := opensimplex.New(params.Seed)

	floorTop := 1 + params.FloorHeight
	earthTop := floorTop + params.EarthHeight

	for x := 1; x < grid.Width-1; x++ {
		for y := 1; y < grid.Height-1; y++ {
			var id materials.ID
			switch {
			case y < floorTop:
				id = materials.Stone
			case y < earthTop:
				n := noise.Eval2(float64(x)*params.NoiseScale, float64(y)*params.NoiseScale)
				if n > params.GravelThreshold {
					id = materials.Gravel
				} else {
					id = materials.Earth
				}
			default:
				id = materials.Void
			}
			e.Set(grid.Index(x, y), id)
		}
	}
}
