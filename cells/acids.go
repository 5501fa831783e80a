package cells

import "github.com/sandcell/evolution/materials"

func registerAcids(reg *materials.Registry) {
	reg.Register(materials.Descriptor{
		ID:      materials.SaltyWater,
		Name:    "salty_water",
		Density: 16,
		Update:  func(ctx *materials.UpdateContext) { FluidFall(ctx, 16, 1) },
	})
	reg.Register(materials.Descriptor{
		ID:             materials.BaseWater,
		Name:           "base_water",
		Density:        14,
		ProtonTransfer: materials.DiluteAcid,
		Update:         baseWaterUpdate,
	})
	reg.Register(materials.Descriptor{
		ID:             materials.DiluteAcid,
		Name:           "dilute_acid",
		Density:        13,
		ProtonTransfer: materials.Water,
		Update:         diluteAcidUpdate,
	})
	reg.Register(materials.Descriptor{
		ID:             materials.Acid,
		Name:           "acid",
		Density:        12,
		ProtonTransfer: materials.DiluteAcid,
		Update:         acidUpdate,
	})
}

// baseWaterUpdate falls like any fluid, and additionally — every tick,
// regardless of whether the fall succeeded — has a chance to neutralize
// a random neighbor through proton transfer.
func baseWaterUpdate(ctx *materials.UpdateContext) {
	FluidFall(ctx, 14, 1)
	if ctx.Rng.Above(51) { // ~80%
		n := PickRandomNeighbor(ctx)
		nd := ctx.Reg.Get(ctx.Grid.At(n))
		if nd.ProtonTransfer != materials.Void {
			ctx.Grid.Set(n, nd.ProtonTransfer)
			ctx.Grid.Set(ctx.Index, materials.Water)
		}
	}
}

func diluteAcidUpdate(ctx *materials.UpdateContext) {
	FluidFall(ctx, 13, 1)
	if ctx.Rng.Above(51) { // ~80%
		n := PickRandomNeighbor(ctx)
		nd := ctx.Reg.Get(ctx.Grid.At(n))
		switch {
		case nd.Dissolve != materials.Void:
			ctx.Grid.Set(n, nd.Dissolve)
			ctx.Grid.Set(ctx.Index, materials.Water)
		case nd.ProtonTransfer != materials.Void:
			ctx.Grid.Set(n, nd.ProtonTransfer)
			ctx.Grid.Set(ctx.Index, materials.Water)
		}
	}
}

// acidUpdate only reacts when its fall is blocked: it then tries
// proton-transfer, salt-dissolve, or heatable consumption against a
// random neighbor, weakening itself to dilute acid on any hit.
func acidUpdate(ctx *materials.UpdateContext) {
	if FluidFall(ctx, 12, 1) {
		return
	}
	if !ctx.Rng.Above(51) { // ~80%
		return
	}
	n := PickRandomNeighbor(ctx)
	neighborID := ctx.Grid.At(n)
	nd := ctx.Reg.Get(neighborID)
	switch {
	case neighborID == materials.Salt:
		ctx.Grid.Set(n, materials.SaltyWater)
		ctx.Grid.Set(ctx.Index, materials.DiluteAcid)
	case nd.ProtonTransfer != materials.Void:
		ctx.Grid.Set(n, nd.ProtonTransfer)
		ctx.Grid.Set(ctx.Index, materials.DiluteAcid)
	case nd.Heatable != materials.Void:
		ctx.Grid.Set(n, nd.Heatable)
		ctx.Grid.Set(ctx.Index, materials.DiluteAcid)
	}
}
