// Package thermal implements the temperature field (C6): a scalar per
// 32x32-pixel tile, diffused across tile edges once per tick with a
// convection bias toward the upward neighbor.
package thermal

import (
	"runtime"
	"sync"

	"github.com/sandcell/evolution/grid"
)

// Field holds one float32 per temperature tile. Reads and writes by
// pixel coordinate are mapped to the tile that contains them, per
// grid.TileOf.
type Field struct {
	values [grid.TilesX * grid.TilesY]float32
}

// NewField returns a field initialized to absolute zero offset (0 in the
// engine's arbitrary temperature units — callers typically seed it to a
// room-temperature baseline before running any ticks).
func NewField() *Field {
	return &Field{}
}

// Get returns the temperature of the tile containing pixel (x, y).
func (f *Field) Get(x, y int) float32 {
	tx, ty := grid.TileOf(x, y)
	return f.values[grid.TileIndex(tx, ty)]
}

// Add increments the temperature of the tile containing pixel (x, y).
func (f *Field) Add(x, y int, delta float32) {
	tx, ty := grid.TileOf(x, y)
	f.values[grid.TileIndex(tx, ty)] += delta
}

// Fill sets every tile to the same temperature — used by engine
// construction and tests to establish a baseline.
func (f *Field) Fill(temperature float32) {
	for i := range f.values {
		f.values[i] = temperature
	}
}

// TileProperties describes the thermal behavior of a tile's dominant
// material, as reported by the engine's PropertiesLookup.
type TileProperties struct {
	Conductivity float32
	Convection   float32 // >0 biases exchange toward the tile above
}

// PropertiesLookup reports the representative material properties for
// tile (tx, ty). The engine supplies this each tick by sampling the
// grid; the field itself never reads cell contents.
type PropertiesLookup func(tx, ty int) TileProperties

// Step runs one diffusion pass: every tile's new value is a
// conductivity-weighted average with its 4-connected neighbors, biased
// toward the tile above when the dominant material convects. Work is
// split across rows of tiles and run concurrently, one worker per
// range of tile rows.
func (f *Field) Step(lookup PropertiesLookup) {
	next := f.values

	numWorkers := runtime.NumCPU()
	if numWorkers < 1 {
		numWorkers = 1
	}
	rowsPerWorker := (grid.TilesY + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		startY := w * rowsPerWorker
		endY := startY + rowsPerWorker
		if endY > grid.TilesY {
			endY = grid.TilesY
		}
		if startY >= grid.TilesY {
			break
		}

		wg.Add(1)
		go func(ys, ye int) {
			defer wg.Done()
			for ty := ys; ty < ye; ty++ {
				for tx := 0; tx < grid.TilesX; tx++ {
					next[grid.TileIndex(tx, ty)] = f.blend(tx, ty, lookup(tx, ty))
				}
			}
		}(startY, endY)
	}
	wg.Wait()

	f.values = next
}

func (f *Field) blend(tx, ty int, props TileProperties) float32 {
	idx := grid.TileIndex(tx, ty)
	sum := f.values[idx]
	weight := float32(1)

	exchange := func(ntx, nty int, isUpward bool) {
		if ntx < 0 || ntx >= grid.TilesX || nty < 0 || nty >= grid.TilesY {
			return
		}
		w := props.Conductivity
		if isUpward && props.Convection > 0 {
			w += props.Convection
		}
		if w <= 0 {
			return
		}
		sum += f.values[grid.TileIndex(ntx, nty)] * w
		weight += w
	}

	exchange(tx, ty+1, true)
	exchange(tx, ty-1, false)
	exchange(tx+1, ty, false)
	exchange(tx-1, ty, false)

	return sum / weight
}
