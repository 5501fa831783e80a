package engine

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/sandcell/evolution/grid"
)

// WritePNG encodes the current grid as an 8-bit grayscale PNG of exactly
// Width x Height pixels, pixel value = material id. This retargets the
// teacher's JSON entity-snapshot idiom (telemetry/snapshot.go) onto the
// literal image format the specification requires.
func (e *Engine) WritePNG(w io.Writer) error {
	img := image.NewGray(image.Rect(0, 0, grid.Width, grid.Height))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			// PNG rows run top-to-bottom; the simulation's y grows
			// upward, so row 0 of the image is the grid's top row.
			id := e.At(grid.Index(x, grid.Height-1-y))
			img.SetGray(x, y, color.Gray{Y: id})
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode snapshot png: %w", err)
	}
	return nil
}

// LoadPNG decodes a grayscale PNG and replaces the grid atomically. A
// snapshot whose dimensions do not match (Width, Height) is rejected and
// the grid is left unchanged.
func (e *Engine) LoadPNG(r io.Reader) error {
	img, err := png.Decode(r)
	if err != nil {
		return fmt.Errorf("decode snapshot png: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != grid.Width || bounds.Dy() != grid.Height {
		return fmt.Errorf("snapshot size %dx%d does not match grid %dx%d",
			bounds.Dx(), bounds.Dy(), grid.Width, grid.Height)
	}

	var next [grid.Width * grid.Height]uint8
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			gray := grayAt(img, bounds.Min.X+x, bounds.Min.Y+y)
			next[grid.Index(x, grid.Height-1-y)] = gray
		}
	}

	e.LoadGrid(next[:])
	return nil
}

func grayAt(img image.Image, x, y int) uint8 {
	r, _, _, _ := img.At(x, y).RGBA()
	return uint8(r >> 8)
}
