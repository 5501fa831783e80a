package cells

import "github.com/sandcell/evolution/materials"

// registerFalling installs the solid_fall family: materials that move by
// gravity alone, plus the two of them (powder, coal) with a
// temperature-driven ignition check ahead of the fall.
func registerFalling(reg *materials.Registry) {
	reg.Register(materials.Descriptor{
		ID:      materials.Sand,
		Name:    "sand",
		Density: 30,
		Update:  func(ctx *materials.UpdateContext) { SolidFall(ctx, 30) },
	})
	reg.Register(materials.Descriptor{
		ID:      materials.Earth,
		Name:    "earth",
		Density: 40,
		Dissolve: materials.Void,
		Update:  func(ctx *materials.UpdateContext) { SolidFall(ctx, 40) },
	})
	reg.Register(materials.Descriptor{
		ID:      materials.Gravel,
		Name:    "gravel",
		Density: 45,
		Update:  func(ctx *materials.UpdateContext) { SolidFall(ctx, 45) },
	})
	reg.Register(materials.Descriptor{
		ID:       materials.Salt,
		Name:     "salt",
		Density:  28,
		Dissolve: materials.SaltyWater,
		Update:   func(ctx *materials.UpdateContext) { SolidFall(ctx, 28) },
	})

	const (
		ignitionTemp       float32 = 300
		highIgnitionTemp   float32 = 400
		ignitionChanceLow  byte    = 230 // ~10% at medium temperature
		ignitionChanceHigh byte    = 205 // ~20% at high temperature
	)

	reg.Register(materials.Descriptor{
		ID:                     materials.Powder,
		Name:                   "powder",
		Density:                10,
		Burnable:               materials.BurningPowder,
		ProtonTransfer:         materials.BurningGas,
		IgnitionTemperature:    ignitionTemp,
		HasIgnitionTemperature: true,
		Update: func(ctx *materials.UpdateContext) {
			if ignite(ctx, ignitionTemp, highIgnitionTemp, ignitionChanceLow, ignitionChanceHigh, materials.BurningPowder) {
				return
			}
			SolidFall(ctx, 10)
		},
	})
	reg.Register(materials.Descriptor{
		ID:                     materials.Coal,
		Name:                   "coal",
		Density:                35,
		Burnable:               materials.BurningCoal,
		ProtonTransfer:         materials.BurningGas,
		IgnitionTemperature:    ignitionTemp,
		HasIgnitionTemperature: true,
		Update: func(ctx *materials.UpdateContext) {
			if ignite(ctx, ignitionTemp, highIgnitionTemp, ignitionChanceLow, ignitionChanceHigh, materials.BurningCoal) {
				return
			}
			SolidFall(ctx, 35)
		},
	})
}

// ignite implements the shared powder/coal temperature-driven ignition
// check: above ignitionTemp there is a chance to catch fire, doubling
// above highIgnitionTemp.
func ignite(ctx *materials.UpdateContext, ignitionTemp, highIgnitionTemp float32, chanceLow, chanceHigh byte, burningID materials.ID) bool {
	t := ctx.Temp.Get(ctx.X, ctx.Y)
	if t < ignitionTemp {
		return false
	}
	chance := chanceLow
	if t >= highIgnitionTemp {
		chance = chanceHigh
	}
	if ctx.Rng.Above(chance) {
		ctx.Grid.Set(ctx.Index, burningID)
		return true
	}
	return false
}
