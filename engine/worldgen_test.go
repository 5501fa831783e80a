package engine

import (
	"testing"

	"github.com/sandcell/evolution/grid"
	"github.com/sandcell/evolution/materials"
)

func TestGenerateLeavesBorderAlone(t *testing.T) {
	e := New()
	e.Generate(DefaultWorldgenParams(1))

	if got := e.At(grid.Index(0, 0)); got != materials.Stone {
		t.Fatalf("corner should remain stone after worldgen, got %d", got)
	}
	if got := e.At(grid.Index(grid.Width-1, grid.Height-1)); got != materials.Stone {
		t.Fatalf("opposite corner should remain stone after worldgen, got %d", got)
	}
}

func TestGenerateProducesAStoneFloorAndAirAboveIt(t *testing.T) {
	e := New()
	params := DefaultWorldgenParams(7)
	e.Generate(params)

	midX := grid.Width / 2
	if got := e.At(grid.Index(midX, 5)); got != materials.Stone {
		t.Fatalf("expected stone near the floor, got %d", got)
	}

	topY := grid.Height - 5
	if got := e.At(grid.Index(midX, topY)); got != materials.Void {
		t.Fatalf("expected void near the top of the grid, got %d", got)
	}
}

func TestGenerateIsDeterministicForSameSeed(t *testing.T) {
	a := New()
	b := New()
	params := DefaultWorldgenParams(99)
	a.Generate(params)
	b.Generate(params)

	if a.Snapshot()[grid.Index(300, 60)] != b.Snapshot()[grid.Index(300, 60)] {
		t.Fatalf("same seed produced different terrain")
	}
}
