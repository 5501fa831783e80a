package cells

import "github.com/sandcell/evolution/materials"

func registerWater(reg *materials.Registry) {
	reg.Register(materials.Descriptor{
		ID:       materials.Water,
		Name:     "water",
		Density:  15,
		Heatable: materials.Steam,
		Update:   waterUpdate,
	})
}

func waterUpdate(ctx *materials.UpdateContext) {
	t := ctx.Temp.Get(ctx.X, ctx.Y)

	if t >= 100 {
		if ctx.Rng.Above(135) { // ~47%
			ctx.Grid.Set(ctx.Index, materials.Steam)
			applyToCardinalNeighbors(ctx, -45)
			return
		}
	} else if t < -3 {
		applyToCardinalNeighbors(ctx, 3)
		if ctx.Rng.Bool() {
			ctx.Grid.Set(ctx.Index, materials.Ice)
		} else {
			ctx.Grid.Set(ctx.Index, materials.Snow)
		}
		return
	}

	if FluidFall(ctx, 15, 1) {
		return
	}

	if ctx.Rng.Above(51) { // ~80%
		n := PickRandomNeighbor(ctx)
		nd := ctx.Reg.Get(ctx.Grid.At(n))
		if nd.Dissolve != materials.Void {
			ctx.Grid.Set(n, materials.Void)
			ctx.Grid.Set(ctx.Index, nd.Dissolve)
		}
	}
}
