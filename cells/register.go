package cells

import "github.com/sandcell/evolution/materials"

// Register installs every material's descriptor into reg. It is the
// single place the registry and the per-material rule files meet —
// callers only ever need cells.Register, never the individual
// registerX helpers.
func Register(reg *materials.Registry) {
	registerInert(reg)
	registerFalling(reg)
	registerWater(reg)
	registerAcids(reg)
	registerGas(reg)
	registerCombustion(reg)
	registerThermalPhase(reg)
	registerGrass(reg)
	registerEnergy(reg)
}
