package cells

import "github.com/sandcell/evolution/materials"

func registerGas(reg *materials.Registry) {
	reg.Register(materials.Descriptor{
		ID:      materials.Gas,
		Name:    "gas",
		Density: -20,
		// Burnable and Heatable are left Void: gas only ignites through
		// its own temperature-driven check, never through a neighbor's
		// igniteAdjacent roll.
		Update: gasUpdate,
	})
	reg.Register(materials.Descriptor{
		ID:      materials.LiquidGas,
		Name:    "liquid_gas",
		Density: 5,
		Update:  liquidGasUpdate,
	})
}

// gasUpdate ignites with probability clamp((T-150)*1.92, 0, 255)/256,
// liquefies below -50C with ~4% chance, otherwise rises.
func gasUpdate(ctx *materials.UpdateContext) {
	t := ctx.Temp.Get(ctx.X, ctx.Y)

	p := (t - 150) * 1.92
	if p < 0 {
		p = 0
	}
	if p > 255 {
		p = 255
	}
	if ctx.Rng.Below(byte(p)) {
		ctx.Grid.Set(ctx.Index, materials.BurningGas)
		return
	}

	if t < -50 && ctx.Rng.Above(245) { // ~4%
		ctx.Grid.Set(ctx.Index, materials.LiquidGas)
		return
	}

	GasRise(ctx, -20)
}

func liquidGasUpdate(ctx *materials.UpdateContext) {
	t := ctx.Temp.Get(ctx.X, ctx.Y)
	if t > -5 && ctx.Rng.Above(224) { // ~12%
		applyToCardinalNeighbors(ctx, -3)
		ctx.Grid.Set(ctx.Index, materials.Gas)
		return
	}
	FluidFall(ctx, 5, 1)
}
