package cells

import "github.com/sandcell/evolution/materials"

const smokeDecayChance byte = 253 // ~0.8%

func registerEnergy(reg *materials.Registry) {
	reg.Register(materials.Descriptor{
		ID:      materials.Smoke,
		Name:    "smoke",
		Density: -15,
		Update:  smokeUpdate,
	})
	reg.Register(materials.Descriptor{
		ID:      materials.Electricity,
		Name:    "electricity",
		Density: 0,
		Static:  true,
		Update:  func(ctx *materials.UpdateContext) { energyPropagate(ctx, 230, 150) },
	})
	reg.Register(materials.Descriptor{
		ID:      materials.Laser,
		Name:    "laser",
		Density: 0,
		Static:  true,
		Update:  func(ctx *materials.UpdateContext) { energyPropagate(ctx, 100, 220) },
	})
	reg.Register(materials.Descriptor{
		ID:      materials.Plasma,
		Name:    "plasma",
		Density: 0,
		Static:  true,
		Update:  func(ctx *materials.UpdateContext) { energyPropagate(ctx, 245, 200) },
	})
	reg.Register(materials.Descriptor{
		ID:      materials.BlackHole,
		Name:    "black_hole",
		Density: 127,
		Static:  true,
		Update:  blackHoleUpdate,
	})
}

func smokeUpdate(ctx *materials.UpdateContext) {
	if ctx.Rng.Above(smokeDecayChance) {
		ctx.Grid.Set(ctx.Index, materials.Void)
		return
	}
	GasRise(ctx, -15)
}

// energyPropagate is shared by electricity, laser, and plasma: each tick
// it may spread into one random void neighbor, may ignite/heat adjacent
// cells, and decays to void with probability (255-decayChance)/256.
func energyPropagate(ctx *materials.UpdateContext, decayChance, spreadChance byte) {
	n := PickRandomNeighbor(ctx)
	if ctx.Grid.At(n) == materials.Void && ctx.Rng.Above(spreadChance) {
		ctx.Grid.Set(n, ctx.Grid.At(ctx.Index))
	}
	igniteAdjacent(ctx, 200)
	if ctx.Rng.Above(decayChance) {
		ctx.Grid.Set(ctx.Index, materials.Void)
	}
}

func blackHoleUpdate(ctx *materials.UpdateContext) {
	for _, n := range cardinalIndices(ctx) {
		ctx.Grid.Set(n, materials.Void)
	}
}
