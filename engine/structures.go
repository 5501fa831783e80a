package engine

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/sandcell/evolution/grid"
)

// Placement is the ECS component for one stamped structure instance:
// where it sits and which catalog definition it came from. Grounded on
// the teacher's Position component (game/game.go's entityMapper), with
// structures replacing organisms as the thing the world tracks.
type Placement struct {
	X, Y int
	Name string
}

// StructureWorld owns the ark ECS world that tracks placed structures.
// Structures are static stamps, not agents — nothing in this type ever
// runs a per-tick behavior; it exists purely so placed instances can be
// counted and enumerated. It has no operation for removing a placement.
type StructureWorld struct {
	world   *ecs.World
	mapper  *ecs.Map1[Placement]
	filter  *ecs.Filter1[Placement]
	catalog *StructureCatalog
}

// NewStructureWorld wires an empty ECS world to the given catalog of
// placeable definitions.
func NewStructureWorld(catalog *StructureCatalog) *StructureWorld {
	world := ecs.NewWorld()
	return &StructureWorld{
		world:   world,
		mapper:  ecs.NewMap1[Placement](world),
		filter:  ecs.NewFilter1[Placement](world),
		catalog: catalog,
	}
}

// Place stamps the named structure onto the engine's grid, anchored at
// (x, y), and records the placement as an entity so it can later be
// enumerated. Returns false if the name is not in the catalog or the
// stamp would touch the border wall or fall outside the grid.
func (sw *StructureWorld) Place(e *Engine, x, y int, name string) bool {
	def, ok := sw.catalog.Get(name)
	if !ok {
		return false
	}

	originX := x - def.AnchorX
	originY := y - def.AnchorY
	if originX < 1 || originY < 1 ||
		originX+def.Width >= grid.Width || originY+def.Height >= grid.Height {
		return false
	}

	for ly := 0; ly < def.Height; ly++ {
		for lx := 0; lx < def.Width; lx++ {
			e.Set(grid.Index(originX+lx, originY+ly), def.At(lx, ly))
		}
	}

	sw.mapper.NewEntity(&Placement{X: x, Y: y, Name: name})
	return true
}

// Count reports how many structures are currently placed.
func (sw *StructureWorld) Count() int {
	n := 0
	query := sw.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Each calls fn once per placed structure, in ECS iteration order.
func (sw *StructureWorld) Each(fn func(Placement)) {
	query := sw.filter.Query()
	for query.Next() {
		p := query.Get()
		fn(*p)
	}
}

// PlaceStructures scatters count structures from catalog at random
// positions across the grid's interior, using the engine's own PRNG so
// boot-time placement participates in the same determinism guarantee as
// the rest of a run. A structure that would land out of bounds is
// skipped, so count is a target rather than a guarantee. The resulting
// StructureWorld is kept on the engine as e.Structures.
func (e *Engine) PlaceStructures(catalog *StructureCatalog, count int) {
	if count <= 0 {
		return
	}
	names := catalog.Names()
	if len(names) == 0 {
		return
	}
	if e.Structures == nil {
		e.Structures = NewStructureWorld(catalog)
	}
	for i := 0; i < count; i++ {
		name := names[e.Rng.IntN(len(names))]
		x := 1 + e.Rng.IntN(grid.Width-2)
		y := 1 + e.Rng.IntN(grid.Height-2)
		e.Structures.Place(e, x, y, name)
	}
}
