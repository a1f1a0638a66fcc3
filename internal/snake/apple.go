package snake

import "github.com/torgrid/torsnake/internal/grid"

// appleStride is a fixed prime used to index into the free-cell list
// when the apple relocates. Selection is deterministic arithmetic, not
// an RNG: identical occupied sets always produce the same cell, which
// keeps every run reproducible.
const appleStride = 15485863

// NoApple signals that the board is fully occupied and no apple could
// be placed. It is a sentinel, not an error: the engine propagates it
// verbatim and the driving loop decides what a full board means.
var NoApple = grid.Location{X: -1, Y: -1}

// selectApple picks a free cell for the apple, never one of the
// occupied cells. With n free cells the index is appleStride mod (n-1),
// or 0 when n <= 1. The (n-1) modulus keeps the arithmetic safe on a
// nearly full board; its small-n bias is part of the behavior.
func selectApple(occupied map[grid.Location]bool, g grid.Grid) grid.Location {
	free := make([]grid.Location, 0, g.Width*g.Height-len(occupied))
	for _, c := range g.Cells() {
		if !occupied[c] {
			free = append(free, c)
		}
	}

	if len(free) == 0 {
		return NoApple
	}

	idx := 0
	if len(free) > 1 {
		idx = appleStride % (len(free) - 1)
	}
	return free[idx]
}
