package cells

import (
	"github.com/sandcell/evolution/grid"
	"github.com/sandcell/evolution/materials"
)

func registerThermalPhase(reg *materials.Registry) {
	reg.Register(materials.Descriptor{
		ID:      materials.Steam,
		Name:    "steam",
		Density: -10,
		Update:  steamUpdate,
	})
	reg.Register(materials.Descriptor{
		ID:      materials.CompressedSteam,
		Name:    "compressed_steam",
		Density: -5,
		Update:  func(ctx *materials.UpdateContext) { GasRise(ctx, -5) },
	})
	reg.Register(materials.Descriptor{
		ID:       materials.Ice,
		Name:     "ice",
		Density:  20,
		Static:   true,
		Heatable: materials.Water,
		Update:   materials.NoOpUpdate,
	})
	reg.Register(materials.Descriptor{
		ID:       materials.CrushedIce,
		Name:     "crushed_ice",
		Density:  0,
		Static:   true,
		Heatable: materials.Water,
		Update:   crushedIceUpdate,
	})
	reg.Register(materials.Descriptor{
		ID:       materials.Snow,
		Name:     "snow",
		Density:  8,
		Heatable: materials.Water,
		Update:   snowUpdate,
	})
}

func steamUpdate(ctx *materials.UpdateContext) {
	if ctx.Temp.Get(ctx.X, ctx.Y) < 0 {
		ctx.Temp.Add(ctx.X, ctx.Y, 5)
		ctx.Grid.Set(ctx.Index, materials.Water)
		return
	}
	GasRise(ctx, -10)
}

func snowUpdate(ctx *materials.UpdateContext) {
	if ctx.Temp.Get(ctx.X, ctx.Y) > 0 {
		applyCross(ctx, -2)
		ctx.Grid.Set(ctx.Index, materials.Water)
		return
	}
	// snow_falling_helper is byte-for-byte the same shape as sand's fall.
	SolidFall(ctx, 8)
}

// crushedIceUpdate lets crushed ice float: it never sinks straight down,
// only sliding diagonally onto a strictly lighter, movable cell below —
// so it rides on top of denser liquids instead of displacing them.
func crushedIceUpdate(ctx *materials.UpdateContext) {
	if ctx.Temp.Get(ctx.X, ctx.Y) > 0 {
		applyCross(ctx, -2)
		ctx.Grid.Set(ctx.Index, materials.Water)
		return
	}
	crushedIceFall(ctx, 0)
}

func crushedIceFall(ctx *materials.UpdateContext, myDensity materials.ID_Density) bool {
	lighter := func(d materials.ID_Density) bool { return d < myDensity }
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
