// Package grid provides pure coordinate arithmetic for a fixed-size
// toroidal integer plane: coordinates wrap modulo width and height, so
// moving off one edge reappears on the opposite edge.
package grid

// Location is a cell on the grid. After Wrap, X lies in [0, Width) and
// Y in [0, Height); y grows downward.
type Location struct {
	X, Y int
}

// Grid describes a torus of Width by Height cells. Both dimensions must
// be positive; callers validate once at startup, not per operation.
type Grid struct {
	Width  int
	Height int
}

// New creates a grid with the given dimensions.
func New(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Wrap maps an arbitrary integer coordinate onto the torus. It uses
// true mathematical modulo rather than Go's truncating remainder, so
// negative inputs wrap correctly. Total over all integers.
func (g Grid) Wrap(x, y int) Location {
	return Location{
		X: ((x % g.Width) + g.Width) % g.Width,
		Y: ((y % g.Height) + g.Height) % g.Height,
	}
}

// Cells enumerates every cell of the grid exactly once in a fixed
// order: all y for x=0, then x=1, and so on. Apple selection indexes
// into this sequence, so the order must never change.
func (g Grid) Cells() []Location {
	cells := make([]Location, 0, g.Width*g.Height)
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			cells = append(cells, Location{X: x, Y: y})
		}
	}
	return cells
}
