package cells

import (
	"github.com/sandcell/evolution/grid"
	"github.com/sandcell/evolution/materials"
)

// cardinalIndices returns the grid indices of the four in-range cardinal
// neighbors of ctx's cell. Reads further than one cell away always guard
// explicitly against grid bounds rather than relying solely on the
// border wall, per the open question on two-cell-away rules.
func cardinalIndices(ctx *materials.UpdateContext) []int {
	coords := [4][2]int{
		{ctx.X, ctx.Y + 1},
		{ctx.X, ctx.Y - 1},
		{ctx.X + 1, ctx.Y},
		{ctx.X - 1, ctx.Y},
	}
	out := make([]int, 0, 4)
	for _, c := range coords {
		if grid.InBounds(c[0], c[1]) {
			out = append(out, grid.Index(c[0], c[1]))
		}
	}
	return out
}

// applyToCardinalNeighbors adds delta to the temperature tiles containing
// each in-range cardinal neighbor of ctx's cell.
func applyToCardinalNeighbors(ctx *materials.UpdateContext, delta float32) {
	coords := [4][2]int{
		{ctx.X, ctx.Y + 1},
		{ctx.X, ctx.Y - 1},
		{ctx.X + 1, ctx.Y},
		{ctx.X - 1, ctx.Y},
	}
	for _, c := range coords {
		if grid.InBounds(c[0], c[1]) {
			ctx.Temp.Add(c[0], c[1], delta)
		}
	}
}

// applyCross adds delta to the temperature tile at (x,y) and at each
// in-range cardinal neighbor — the "five-cell cross" used by melting
// rules.
func applyCross(ctx *materials.UpdateContext, delta float32) {
	ctx.Temp.Add(ctx.X, ctx.Y, delta)
	applyToCardinalNeighbors(ctx, delta)
}

// avgLocalTemp averages the temperature at ctx's cell with its in-range
// cardinal neighbors (the "5-point local temperature average").
func avgLocalTemp(ctx *materials.UpdateContext) float32 {
	sum := ctx.Temp.Get(ctx.X, ctx.Y)
	count := float32(1)
	coords := [4][2]int{
		{ctx.X, ctx.Y + 1},
		{ctx.X, ctx.Y - 1},
		{ctx.X + 1, ctx.Y},
		{ctx.X - 1, ctx.Y},
	}
	for _, c := range coords {
		if grid.InBounds(c[0], c[1]) {
			sum += ctx.Temp.Get(c[0], c[1])
			count++
		}
	}
	return sum / count
}

// igniteAdjacent rolls once per in-range cardinal neighbor; on success it
// converts that neighbor through its Burnable id (falling back to
// Heatable when it is not burnable) — the shared mechanism every
// combustion and energy material uses to spread into its surroundings.
func igniteAdjacent(ctx *materials.UpdateContext, chance byte) {
	for _, n := range cardinalIndices(ctx) {
		if !ctx.Rng.Above(chance) {
			continue
		}
		nd := ctx.Reg.Get(ctx.Grid.At(n))
		switch {
		case nd.Burnable != materials.Void:
			ctx.Grid.Set(n, nd.Burnable)
		case nd.Heatable != materials.Void:
			ctx.Grid.Set(n, nd.Heatable)
		}
	}
}

// neighborHasWater reports whether any in-range cardinal neighbor is one
// of the water-family materials.
func neighborHasWater(ctx *materials.UpdateContext) bool {
	for _, n := range cardinalIndices(ctx) {
		switch ctx.Grid.At(n) {
		case materials.Water, materials.SaltyWater, materials.BaseWater:
			return true
		}
	}
	return false
}

// scanCardinal reports whether a water-family or base-water-family cell
// is adjacent, for the grass/dry-grass reactions.
func scanCardinal(ctx *materials.UpdateContext) (hasWater, hasBase bool) {
	for _, n := range cardinalIndices(ctx) {
		switch ctx.Grid.At(n) {
		case materials.Water, materials.SaltyWater:
			hasWater = true
		case materials.BaseWater:
			hasBase = true
		}
	}
	return
}
