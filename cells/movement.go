// Package cells implements the movement primitives (C4) and the
// per-material update rules (C5). Movement helpers never touch
// temperature; per-material rules compose them with direct reads/writes
// and registry lookups.
package cells

import (
	"github.com/sandcell/evolution/grid"
	"github.com/sandcell/evolution/materials"
)

// diagonalOrder returns the two diagonal "slots" (0, 1) in a randomly
// chosen order, consuming one PRNG byte. Every movement helper that
// tries two diagonally-equal candidates uses this so left/right symmetry
// is statistical rather than systematic.
func diagonalOrder(rng materials.Randomizer) [2]int {
	if rng.Bool() {
		return [2]int{0, 1}
	}
	return [2]int{1, 0}
}

func tryMove(ctx *materials.UpdateContext, dest int, passable func(density materials.ID_Density) bool) bool {
	d := ctx.Reg.Get(ctx.Grid.At(dest))
	if passable(d.Density) && !d.Static {
		ctx.Grid.Swap(ctx.Index, dest)
		return true
	}
	return false
}

// SolidFall tries straight down, then the two lower diagonals in a
// randomly chosen order. A destination is passable when its density is
// lower than myDensity and it is not static.
func SolidFall(ctx *materials.UpdateContext, myDensity materials.ID_Density) bool {
	lighter := func(d materials.ID_Density) bool { return d < myDensity }

	down := grid.Index(ctx.X, ctx.Y-1)
	if tryMove(ctx, down, lighter) {
		return true
	}

	order := diagonalOrder(ctx.Rng)
	for _, slot := range order {
		var dest int
		if slot == 0 {
			dest = grid.Index(ctx.X+1, ctx.Y-1)
		} else {
			dest = grid.Index(ctx.X-1, ctx.Y-1)
		}
		if tryMove(ctx, dest, lighter) {
			return true
		}
	}
	return false
}

// FluidFall behaves like SolidFall; if still blocked, with probability
// thickness/256 it also tries the two horizontal neighbors in the same
// randomly chosen order. Higher thickness means more horizontal spread
// per tick, modeling viscosity.
func FluidFall(ctx *materials.UpdateContext, myDensity materials.ID_Density, thickness byte) bool {
	lighter := func(d materials.ID_Density) bool { return d < myDensity }

	down := grid.Index(ctx.X, ctx.Y-1)
	if tryMove(ctx, down, lighter) {
		return true
	}

	order := diagonalOrder(ctx.Rng)
	for _, slot := range order {
		var dest int
		if slot == 0 {
			dest = grid.Index(ctx.X+1, ctx.Y-1)
		} else {
			dest = grid.Index(ctx.X-1, ctx.Y-1)
		}
		if tryMove(ctx, dest, lighter) {
			return true
		}
	}

	if ctx.Rng.Below(thickness) {
		for _, slot := range order {
			var dest int
			if slot == 0 {
				dest = grid.Index(ctx.X+1, ctx.Y)
			} else {
				dest = grid.Index(ctx.X-1, ctx.Y)
			}
			if tryMove(ctx, dest, lighter) {
				return true
			}
		}
	}
	return false
}

// GasRise mirrors FluidFall upward: a destination is passable when its
// density is higher than myDensity. Diagonals-up are tried first, then
// horizontals, both unconditionally (gases spread without a viscosity
// gate).
func GasRise(ctx *materials.UpdateContext, myDensity materials.ID_Density) bool {
	heavier := func(d materials.ID_Density) bool { return d > myDensity }

	order := diagonalOrder(ctx.Rng)
	for _, slot := range order {
		var dest int
		if slot == 0 {
			dest = grid.Index(ctx.X+1, ctx.Y+1)
		} else {
			dest = grid.Index(ctx.X-1, ctx.Y+1)
		}
		if tryMove(ctx, dest, heavier) {
			return true
		}
	}

	for _, slot := range order {
		var dest int
		if slot == 0 {
			dest = grid.Index(ctx.X+1, ctx.Y)
		} else {
			dest = grid.Index(ctx.X-1, ctx.Y)
		}
		if tryMove(ctx, dest, heavier) {
			return true
		}
	}
	return false
}

// PickRandomNeighbor chooses uniformly among the four cardinal neighbors
// using one PRNG byte mod 4 and returns its grid index.
func PickRandomNeighbor(ctx *materials.UpdateContext) int {
	switch ctx.Rng.IntN(4) {
	case 0:
		return grid.Index(ctx.X, ctx.Y+1)
	case 1:
		return grid.Index(ctx.X, ctx.Y-1)
	case 2:
		return grid.Index(ctx.X+1, ctx.Y)
	default:
		return grid.Index(ctx.X-1, ctx.Y)
	}
}

// SpawnSmoke enumerates the cardinal neighbors that are both in-range and
// currently void, then places up to targetCount smoke cells among them,
// chosen without replacement. It returns the number actually placed.
func SpawnSmoke(ctx *materials.UpdateContext, targetCount int) int {
	var candidates []int
	consider := func(x, y int) {
		if !grid.InBounds(x, y) {
			return
		}
		idx := grid.Index(x, y)
		if ctx.Grid.At(idx) == materials.Void {
			candidates = append(candidates, idx)
		}
	}
	consider(ctx.X, ctx.Y+1)
	consider(ctx.X, ctx.Y-1)
	consider(ctx.X+1, ctx.Y)
	consider(ctx.X-1, ctx.Y)

	spawned := 0
	for spawned < targetCount && len(candidates) > 0 {
		i := ctx.Rng.IntN(len(candidates))
		idx := candidates[i]
		candidates = append(candidates[:i], candidates[i+1:]...)
		ctx.Grid.Set(idx, materials.Smoke)
		spawned++
	}
	return spawned
}
