package cells

import "github.com/sandcell/evolution/materials"

const grassSpreadChance byte = 219 // ~14%

func registerGrass(reg *materials.Registry) {
	reg.Register(materials.Descriptor{
		ID:       materials.Grass,
		Name:     "grass",
		Density:  90,
		Static:   true,
		Burnable: materials.BurningWood,
		Update:   grassUpdate,
	})
	reg.Register(materials.Descriptor{
		ID:       materials.DryGrass,
		Name:     "dry_grass",
		Density:  90,
		Static:   true,
		Burnable: materials.BurningWood,
		Update:   dryGrassUpdate,
	})
}

func grassUpdate(ctx *materials.UpdateContext) {
	hasWater, hasBase := scanCardinal(ctx)
	if hasBase {
		ctx.Grid.Set(ctx.Index, materials.DryGrass)
		return
	}
	if hasWater && ctx.Rng.Above(grassSpreadChance) {
		n := PickRandomNeighbor(ctx)
		if ctx.Grid.At(n) == materials.Void {
			ctx.Grid.Set(n, materials.Grass)
		}
	}
}

func dryGrassUpdate(ctx *materials.UpdateContext) {
	hasWater, _ := scanCardinal(ctx)
	if hasWater {
		ctx.Grid.Set(ctx.Index, materials.Grass)
	}
}
