package cells

import (
	"github.com/sandcell/evolution/grid"
	"github.com/sandcell/evolution/materials"
)

const (
	burningExtinguishBelow float32 = 60 // wood/coal/powder self-extinguish threshold
	fireExtinguishBelow    float32 = 80
	smokeSpawnChance       byte    = 250
	burnOutChance          byte    = 253
	igniteChance           byte    = 235
)

func registerCombustion(reg *materials.Registry) {
	reg.Register(materials.Descriptor{
		ID:      materials.Fire,
		Name:    "fire",
		Density: -25,
		Update:  fireUpdate,
	})
	reg.Register(materials.Descriptor{
		ID:      materials.BurningWood,
		Name:    "burning_wood",
		Density: 90,
		Static:  true,
		Update:  burningWoodUpdate,
	})
	reg.Register(materials.Descriptor{
		ID:      materials.BurningCoal,
		Name:    "burning_coal",
		Density: 35,
		Static:  true,
		Update:  burningCoalUpdate,
	})
	reg.Register(materials.Descriptor{
		ID:      materials.BurningPowder,
		Name:    "burning_powder",
		Density: 10,
		Update:  burningPowderUpdate,
	})
	reg.Register(materials.Descriptor{
		ID:      materials.BurningGas,
		Name:    "burning_gas",
		Density: -18,
		Update:  burningGasUpdate,
	})
}

func fireUpdate(ctx *materials.UpdateContext) {
	applyToCardinalNeighbors(ctx, 3)
	igniteAdjacent(ctx, igniteChance)

	if ctx.Rng.Above(smokeSpawnChance) {
		SpawnSmoke(ctx, 1)
	}

	if avgLocalTemp(ctx) < fireExtinguishBelow {
		ctx.Grid.Set(ctx.Index, materials.Void)
		return
	}

	for _, n := range cardinalIndices(ctx) {
		if ctx.Grid.At(n) == materials.Void {
			ctx.Grid.Swap(ctx.Index, n)
			return
		}
	}
	ctx.Grid.Set(ctx.Index, materials.Void)
}

func burningWoodUpdate(ctx *materials.UpdateContext) {
	applyToCardinalNeighbors(ctx, 3)
	igniteAdjacent(ctx, igniteChance)

	if avgLocalTemp(ctx) < burningExtinguishBelow {
		ctx.Grid.Set(ctx.Index, materials.Void)
		return
	}
	if ctx.Rng.Above(smokeSpawnChance) {
		SpawnSmoke(ctx, 1)
	}
	if neighborHasWater(ctx) {
		ctx.Grid.Set(ctx.Index, materials.Coal)
		return
	}
	if ctx.Rng.Above(burnOutChance) {
		ctx.Grid.Set(ctx.Index, materials.Void)
	}
}

func burningCoalUpdate(ctx *materials.UpdateContext) {
	applyToCardinalNeighbors(ctx, 3)
	igniteAdjacent(ctx, igniteChance)

	if avgLocalTemp(ctx) < burningExtinguishBelow {
		ctx.Grid.Set(ctx.Index, materials.Coal)
		return
	}
	if ctx.Rng.Above(smokeSpawnChance) {
		SpawnSmoke(ctx, 1)
	}
	if neighborHasWater(ctx) {
		ctx.Grid.Set(ctx.Index, materials.Coal)
		return
	}
	if ctx.Rng.Above(burnOutChance) {
		ctx.Grid.Set(ctx.Index, materials.Void)
	}
}

// burningPowderUpdate emits a wide heat kernel: +500 at its own cell,
// +350 on the diagonal ring, +250 on the cardinal axes.
func burningPowderUpdate(ctx *materials.UpdateContext) {
	ctx.Temp.Add(ctx.X, ctx.Y, 500)
	applyToCardinalNeighbors(ctx, 250)
	for _, c := range [4][2]int{
		{ctx.X + 1, ctx.Y + 1}, {ctx.X - 1, ctx.Y + 1},
		{ctx.X + 1, ctx.Y - 1}, {ctx.X - 1, ctx.Y - 1},
	} {
		if grid.InBounds(c[0], c[1]) {
			ctx.Temp.Add(c[0], c[1], 350)
		}
	}

	igniteAdjacent(ctx, 230)

	if avgLocalTemp(ctx) < burningExtinguishBelow {
		ctx.Grid.Set(ctx.Index, materials.Void)
		return
	}
	if ctx.Rng.Above(smokeSpawnChance) {
		SpawnSmoke(ctx, 1)
	}
	if ctx.Rng.Above(burnOutChance) {
		ctx.Grid.Set(ctx.Index, materials.Void)
	}
}

func burningGasUpdate(ctx *materials.UpdateContext) {
	applyToCardinalNeighbors(ctx, 3)
	igniteAdjacent(ctx, igniteChance)
	if GasRise(ctx, -18) {
		return
	}
	if ctx.Rng.Above(burnOutChance) {
		ctx.Grid.Set(ctx.Index, materials.Void)
	}
}
