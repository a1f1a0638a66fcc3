package snake

import "github.com/torgrid/torsnake/internal/grid"

// Snake is the snake's body and heading. The head is stored apart from
// the tail; Tail runs head-to-tail, newest segment first. Snake is a
// value: operations return copies and never mutate the receiver.
type Snake struct {
	Heading Direction
	Head    grid.Location
	Tail    []grid.Location
}

// Len returns the total snake length, head included.
func (s Snake) Len() int {
	return 1 + len(s.Tail)
}

// Advance computes the wrapped next head position and the body as it
// would be without growth: the old head becomes the first tail segment
// and the oldest segment drops off the far end. For a tail-less snake
// the returned body is empty.
func (s Snake) Advance(g grid.Grid) (newHead grid.Location, body []grid.Location) {
	dx, dy := s.Heading.Offset()
	newHead = g.Wrap(s.Head.X+dx, s.Head.Y+dy)

	body = make([]grid.Location, 0, len(s.Tail)+1)
	body = append(body, s.Head)
	body = append(body, s.Tail...)
	body = body[:len(body)-1]
	return newHead, body
}

// SetDirection returns a copy with the heading replaced. Any direction
// is accepted, including the reverse of the current heading; there is
// no self-collision rule in this game.
func (s Snake) SetDirection(d Direction) Snake {
	s.Heading = d
	return s
}
