// Package grid implements the fixed 2-D coordinate system the simulation
// runs on: grid dimensions, row-major indexing, neighbor offsets, and the
// pixel-to-temperature-tile mapping.
package grid

// Width and Height are compile-time grid dimensions. They never change at
// runtime.
const (
	Width  = 1024
	Height = 512
)

// TileSize is the side length, in pixels, of one temperature tile.
const TileSize = 32

// TilesX and TilesY are the temperature field's tile-grid dimensions.
const (
	TilesX = (Width + TileSize - 1) / TileSize
	TilesY = (Height + TileSize - 1) / TileSize
)

// Index maps a pixel coordinate to its offset in a row-major W*H byte
// slice. Callers must stay within [0,Width)x[0,Height); there is no
// bounds check, matching the original's border-wall discipline that keeps
// the hot loop branch-free.
func Index(x, y int) int {
	return y*Width + x
}

// InBounds reports whether (x, y) lies on the addressable grid.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Neighbors holds the eight indices around a cell, precomputed once per
// call site so movement helpers avoid repeated Index arithmetic.
type Neighbors struct {
	Up, Down, Left, Right         int
	UpLeft, UpRight               int
	DownLeft, DownRight           int
}

// NeighborsOf computes the eight-neighbor index set for (x, y). As with
// Index, callers are expected to stay one cell inside the border wall so
// every neighbor is in range.
func NeighborsOf(x, y int) Neighbors {
	return Neighbors{
		Up:        Index(x, y+1),
		Down:      Index(x, y-1),
		Left:      Index(x-1, y),
		Right:     Index(x+1, y),
		UpLeft:    Index(x-1, y+1),
		UpRight:   Index(x+1, y+1),
		DownLeft:  Index(x-1, y-1),
		DownRight: Index(x+1, y-1),
	}
}

// TileOf maps a pixel coordinate to the temperature tile that contains it.
func TileOf(x, y int) (tx, ty int) {
	return x / TileSize, y / TileSize
}

// TileIndex maps tile coordinates to their offset in a row-major
// TilesX*TilesY tile slice.
func TileIndex(tx, ty int) int {
	return ty*TilesX + tx
}
