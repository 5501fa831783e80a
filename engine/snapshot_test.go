package engine

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/sandcell/evolution/grid"
	"github.com/sandcell/evolution/materials"
)

func TestWritePNGThenLoadPNGRoundTrips(t *testing.T) {
	e := New()
	e.Set(grid.Index(10, 10), materials.Sand)
	e.Set(grid.Index(500, 250), materials.Water)

	var buf bytes.Buffer
	if err := e.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	other := New()
	if err := other.LoadPNG(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("LoadPNG: %v", err)
	}

	if got := other.At(grid.Index(10, 10)); got != materials.Sand {
		t.Fatalf("sand cell not round-tripped: got %d", got)
	}
	if got := other.At(grid.Index(500, 250)); got != materials.Water {
		t.Fatalf("water cell not round-tripped: got %d", got)
	}
	if got := other.At(grid.Index(0, 0)); got != materials.Stone {
		t.Fatalf("border cell not round-tripped as stone: got %d", got)
	}
}

func TestLoadPNGRejectsWrongDimensions(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test fixture: %v", err)
	}

	e := New()
	e.Set(grid.Index(10, 10), materials.Sand)

	if err := e.LoadPNG(bytes.NewReader(buf.Bytes())); err == nil {
		t.Fatalf("expected a dimension-mismatch error")
	}
	if got := e.At(grid.Index(10, 10)); got != materials.Sand {
		t.Fatalf("grid should be unchanged after a rejected snapshot, got %d", got)
	}
}

func TestGrayAtReadsValueChannel(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	img.SetGray(0, 0, color.Gray{Y: 42})
	if got := grayAt(img, 0, 0); got != 42 {
		t.Fatalf("grayAt = %d, want 42", got)
	}
}
