package cells

import (
	"testing"

	"github.com/sandcell/evolution/grid"
	"github.com/sandcell/evolution/materials"
)

type fakeGrid []materials.ID

func (g fakeGrid) At(i int) materials.ID   { return g[i] }
func (g fakeGrid) Set(i int, id materials.ID) { g[i] = id }
func (g fakeGrid) Swap(a, b int)           { g[a], g[b] = g[b], g[a] }

type fakeTemp struct {
	tiles [grid.TilesX * grid.TilesY]float32
}

func (t *fakeTemp) Get(x, y int) float32 {
	tx, ty := grid.TileOf(x, y)
	return t.tiles[grid.TileIndex(tx, ty)]
}

func (t *fakeTemp) Add(x, y int, delta float32) {
	tx, ty := grid.TileOf(x, y)
	t.tiles[grid.TileIndex(tx, ty)] += delta
}

func newTestRegistry() *materials.Registry {
	reg := materials.NewRegistry()
	Register(reg)
	return reg
}

func newTestContext(g fakeGrid, reg *materials.Registry, x, y int) *materials.UpdateContext {
	return &materials.UpdateContext{
		X: x, Y: y, Index: grid.Index(x, y),
		Grid: g, Reg: reg, Rng: grid.NewRandom(), Temp: &fakeTemp{},
	}
}

func TestSolidFallMovesIntoVoidBelow(t *testing.T) {
	reg := newTestRegistry()
	g := make(fakeGrid, grid.Width*grid.Height)
	x, y := 5, 5
	idx := grid.Index(x, y)
	g[idx] = materials.Sand
	ctx := newTestContext(g, reg, x, y)

	moved := SolidFall(ctx, 30)
	if !moved {
		t.Fatalf("expected sand to fall into void below")
	}
	below := grid.Index(x, y-1)
	if g[below] != materials.Sand {
		t.Fatalf("sand did not land below: got %d", g[below])
	}
	if g[idx] != materials.Void {
		t.Fatalf("origin cell not cleared: got %d", g[idx])
	}
}

func TestSolidFallBlockedByStatic(t *testing.T) {
	reg := newTestRegistry()
	g := make(fakeGrid, grid.Width*grid.Height)
	x, y := 5, 5
	idx := grid.Index(x, y)
	g[idx] = materials.Sand
	g[grid.Index(x, y-1)] = materials.Stone
	g[grid.Index(x+1, y-1)] = materials.Stone
	g[grid.Index(x-1, y-1)] = materials.Stone
	ctx := newTestContext(g, reg, x, y)

	if SolidFall(ctx, 30) {
		t.Fatalf("expected sand to stay put against an all-stone floor")
	}
	if g[idx] != materials.Sand {
		t.Fatalf("sand moved despite being fully blocked")
	}
}

func TestGasRiseMovesSmokeIntoVoid(t *testing.T) {
	reg := newTestRegistry()
	g := make(fakeGrid, grid.Width*grid.Height)
	x, y := 5, 5
	idx := grid.Index(x, y)
	g[idx] = materials.Smoke
	ctx := newTestContext(g, reg, x, y)

	if !GasRise(ctx, -15) {
		t.Fatalf("expected smoke to rise into void")
	}
	if g[idx] != materials.Void {
		t.Fatalf("origin not cleared after rise")
	}
}

func TestSpawnSmokeRespectsVoidOnlyAndBounds(t *testing.T) {
	reg := newTestRegistry()
	g := make(fakeGrid, grid.Width*grid.Height)
	x, y := 0, 0 // corner: only two in-range cardinal neighbors
	idx := grid.Index(x, y)
	ctx := newTestContext(g, reg, x, y)
	ctx.Index = idx

	spawned := SpawnSmoke(ctx, 4)
	if spawned > 2 {
		t.Fatalf("spawned %d smoke cells from a corner with only 2 neighbors", spawned)
	}
	for _, n := range []int{grid.Index(1, 0), grid.Index(0, 1)} {
		if g[n] != materials.Smoke && g[n] != materials.Void {
			t.Fatalf("unexpected material at neighbor: %d", g[n])
		}
	}
}

func TestPickRandomNeighborIsCardinal(t *testing.T) {
	reg := newTestRegistry()
	g := make(fakeGrid, grid.Width*grid.Height)
	x, y := 10, 10
	ctx := newTestContext(g, reg, x, y)
	ctx.Index = grid.Index(x, y)

	valid := map[int]bool{
		grid.Index(x, y+1): true,
		grid.Index(x, y-1): true,
		grid.Index(x+1, y): true,
		grid.Index(x-1, y): true,
	}
	for i := 0; i < 50; i++ {
		n := PickRandomNeighbor(ctx)
		if !valid[n] {
			t.Fatalf("PickRandomNeighbor returned non-cardinal index %d", n)
		}
	}
}
