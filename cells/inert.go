package cells

import "github.com/sandcell/evolution/materials"

// registerInert installs the materials that have no rule beyond sitting
// in place: void (the implicit default), the immovable wall, and the
// static structural solids whose only behavior is being a burnable or
// heatable target for other materials' rules.
func registerInert(reg *materials.Registry) {
	reg.Register(materials.Descriptor{
		ID:     materials.Stone,
		Name:   "stone",
		Density: 127,
		Static: true,
		Update: materials.NoOpUpdate,
	})
	reg.Register(materials.Descriptor{
		ID:     materials.Copper,
		Name:   "copper",
		Density: 100,
		Static: true,
		Update: materials.NoOpUpdate,
	})
	reg.Register(materials.Descriptor{
		ID:       materials.Wood,
		Name:     "wood",
		Density:  90,
		Static:   true,
		Burnable: materials.BurningWood,
		Update:   materials.NoOpUpdate,
	})
}
