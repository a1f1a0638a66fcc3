// Package snake implements the game-state transition engine: a pure
// function that advances the world one discrete step, the direction
// change triggered by input, and deterministic apple placement. It has
// no external dependencies so the logic stays testable in isolation.
package snake

import "github.com/torgrid/torsnake/internal/grid"

// State is the complete game state. It is an immutable value: the
// transitions below consume a State and return a new one, never
// mutating in place. The driving loop owns the single current value.
type State struct {
	Snake Snake
	Apple grid.Location
}

// NewState returns the fixed initial state: a two-cell snake heading
// right with the apple a few cells away.
func NewState() State {
	return State{
		Snake: Snake{
			Heading: DirRight,
			Head:    grid.Location{X: 4, Y: 5},
			Tail:    []grid.Location{{X: 3, Y: 5}},
		},
		Apple: grid.Location{X: 3, Y: 2},
	}
}

// BoardFull reports whether the last apple relocation found no free
// cell. The engine keeps accepting transitions in this state; handling
// it (win, stalemate) is the caller's call.
func (s State) BoardFull() bool {
	return s.Apple == NoApple
}

// ApplyDirection returns the state with the snake's heading replaced.
// It always succeeds and changes nothing else.
func ApplyDirection(s State, d Direction) State {
	s.Snake = s.Snake.SetDirection(d)
	return s
}

// Step advances the world by one tick: the head moves one cell in the
// current heading (wrapping at the edges), the tail follows, and if the
// head lands on the apple the snake grows by one segment and the apple
// relocates to a cell outside the post-move body.
func Step(s State, g grid.Grid) State {
	newHead, body := s.Snake.Advance(g)
	ate := newHead == s.Apple

	tail := body
	if ate {
		// Growth: keep the whole previous body, old head first.
		tail = make([]grid.Location, 0, len(s.Snake.Tail)+1)
		tail = append(tail, s.Snake.Head)
		tail = append(tail, s.Snake.Tail...)
	}

	apple := s.Apple
	if ate {
		// Relocation sees the post-move occupied set, so the new apple
		// can never land on the grown snake.
		occupied := make(map[grid.Location]bool, len(tail)+1)
		occupied[newHead] = true
		for _, seg := range tail {
			occupied[seg] = true
		}
		apple = selectApple(occupied, g)
	}

	return State{
		Snake: Snake{Heading: s.Snake.Heading, Head: newHead, Tail: tail},
		Apple: apple,
	}
}

// Turn is the combined key-driven update: change heading, then step,
// with only the final state observable.
func Turn(s State, d Direction, g grid.Grid) State {
	return Step(ApplyDirection(s, d), g)
}
