// Package render converts a game state into drawable rectangles. It is
// the presentation half of the engine boundary: this package decides
// geometry, the platform layer decides styling.
package render

import (
	"github.com/torgrid/torsnake/internal/core"
	"github.com/torgrid/torsnake/internal/grid"
	"github.com/torgrid/torsnake/internal/snake"
)

// Frame holds everything a renderer needs to draw one state. All
// rectangles are in screen characters, relative to the world's top-left
// corner.
type Frame struct {
	// World is the background rectangle, sized
	// worldWidth*cellSize by worldHeight*cellSize.
	World core.Rect

	// Head is the snake's leading cell.
	Head core.Rect

	// Segments holds one rectangle per tail segment, head-to-tail
	// order.
	Segments []core.Rect

	// Apple is the apple's cell. Zero when Full.
	Apple core.Rect

	// Full is set when the apple sentinel signals a fully occupied
	// board; there is then no apple rectangle to draw.
	Full bool
}

// Layout computes the drawable rectangles for a state with the given
// cell size.
func Layout(s snake.State, g grid.Grid, cellSize int) Frame {
	f := Frame{
		World: core.NewRect(0, 0, g.Width*cellSize, g.Height*cellSize),
		Head:  cellRect(s.Snake.Head, cellSize),
	}

	if len(s.Snake.Tail) > 0 {
		f.Segments = make([]core.Rect, len(s.Snake.Tail))
		for i, seg := range s.Snake.Tail {
			f.Segments[i] = cellRect(seg, cellSize)
		}
	}

	if s.BoardFull() {
		f.Full = true
	} else {
		f.Apple = cellRect(s.Apple, cellSize)
	}
	return f
}

func cellRect(l grid.Location, size int) core.Rect {
	return core.NewRect(l.X*size, l.Y*size, size, size)
}
