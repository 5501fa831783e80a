package thermal

import "testing"

func uniformProps(tx, ty int) TileProperties {
	return TileProperties{Conductivity: 0.1}
}

func TestGetAddRoundTrip(t *testing.T) {
	f := NewField()
	f.Add(5, 5, 42)
	if got := f.Get(5, 5); got != 42 {
		t.Fatalf("Get after Add = %v, want 42", got)
	}
	// A different pixel in the same 32x32 tile reads the same value.
	if got := f.Get(6, 6); got != 42 {
		t.Fatalf("tile neighbor pixel diverged: got %v", got)
	}
}

func TestFillSetsEveryTile(t *testing.T) {
	f := NewField()
	f.Fill(20)
	if got := f.Get(0, 0); got != 20 {
		t.Fatalf("Get(0,0) after Fill = %v, want 20", got)
	}
	if got := f.Get(1000, 500); got != 20 {
		t.Fatalf("Get(far corner) after Fill = %v, want 20", got)
	}
}

func TestStepConvergesTowardUniform(t *testing.T) {
	f := NewField()
	f.Fill(20)
	f.Add(0, 0, 1000) // one hot tile

	before := f.Get(0, 0)
	f.Step(uniformProps)
	after := f.Get(0, 0)

	if after >= before {
		t.Fatalf("hot tile did not cool toward neighbors: before=%v after=%v", before, after)
	}

	neighbor := f.Get(33, 0)
	if neighbor <= 20 {
		t.Fatalf("cold neighbor did not warm from diffusion: got %v", neighbor)
	}
}

func TestStepRespectsZeroConductivityIsolation(t *testing.T) {
	f := NewField()
	f.Add(0, 0, 500)
	isolated := func(tx, ty int) TileProperties { return TileProperties{Conductivity: 0} }
	f.Step(isolated)
	if got := f.Get(0, 0); got != 500 {
		t.Fatalf("zero-conductivity tile changed value: got %v, want 500", got)
	}
}
