package snake

import (
	"testing"

	"github.com/torgrid/torsnake/internal/grid"
)

func TestStepWrapsAroundEdge(t *testing.T) {
	g := grid.New(16, 12)
	s := State{
		Snake: Snake{
			Heading: DirRight,
			Head:    grid.Location{X: 15, Y: 5},
			Tail:    []grid.Location{{X: 14, Y: 5}},
		},
		Apple: grid.Location{X: 3, Y: 2},
	}

	next := Step(s, g)

	if next.Snake.Head != (grid.Location{X: 0, Y: 5}) {
		t.Errorf("head = %v, expected (0,5)", next.Snake.Head)
	}
	if next.Apple != (grid.Location{X: 3, Y: 2}) {
		t.Errorf("apple moved to %v, expected unchanged (3,2)", next.Apple)
	}
	if len(next.Snake.Tail) != 1 {
		t.Errorf("tail length = %d, expected 1", len(next.Snake.Tail))
	}
	if next.Snake.Tail[0] != (grid.Location{X: 15, Y: 5}) {
		t.Errorf("tail[0] = %v, expected old head (15,5)", next.Snake.Tail[0])
	}
}

func TestStepEatsAndGrows(t *testing.T) {
	g := grid.New(16, 12)
	s := State{
		Snake: Snake{
			Heading: DirRight,
			Head:    grid.Location{X: 2, Y: 2},
			Tail:    []grid.Location{{X: 1, Y: 2}},
		},
		Apple: grid.Location{X: 3, Y: 2},
	}

	next := Step(s, g)

	if next.Snake.Head != (grid.Location{X: 3, Y: 2}) {
		t.Fatalf("head = %v, expected (3,2)", next.Snake.Head)
	}
	if next.Snake.Len() != 3 {
		t.Errorf("length = %d, expected 3 after eating", next.Snake.Len())
	}
	wantTail := []grid.Location{{X: 2, Y: 2}, {X: 1, Y: 2}}
	if len(next.Snake.Tail) != len(wantTail) {
		t.Fatalf("tail = %v, expected %v", next.Snake.Tail, wantTail)
	}
	for i := range wantTail {
		if next.Snake.Tail[i] != wantTail[i] {
			t.Errorf("tail[%d] = %v, expected %v", i, next.Snake.Tail[i], wantTail[i])
		}
	}

	// 189 free cells remain; the stride formula picks index
	// 15485863 mod 188 = 115, which is (9,10) in enumeration order.
	if next.Apple != (grid.Location{X: 9, Y: 10}) {
		t.Errorf("apple = %v, expected (9,10)", next.Apple)
	}
}

func TestApplyDirectionThenStep(t *testing.T) {
	g := grid.New(16, 12)
	s := NewState()

	next := Turn(s, DirUp, g)

	if next.Snake.Head != (grid.Location{X: 4, Y: 4}) {
		t.Errorf("head = %v, expected (4,4)", next.Snake.Head)
	}
	if len(next.Snake.Tail) != 1 || next.Snake.Tail[0] != (grid.Location{X: 4, Y: 5}) {
		t.Errorf("tail = %v, expected [(4,5)]", next.Snake.Tail)
	}
	if next.Apple != (grid.Location{X: 3, Y: 2}) {
		t.Errorf("apple = %v, expected unchanged (3,2)", next.Apple)
	}
	if next.Snake.Heading != DirUp {
		t.Errorf("heading = %v, expected up", next.Snake.Heading)
	}
}

func TestStepConservesLengthWithoutApple(t *testing.T) {
	g := grid.New(16, 12)
	s := NewState()

	// Walk a full lap around the torus; the apple at (3,2) is never on
	// row 5, so the length must stay constant throughout.
	for i := 0; i < 40; i++ {
		before := s.Snake.Len()
		s = Step(s, g)
		if s.Snake.Len() != before {
			t.Fatalf("step %d: length changed %d -> %d without eating", i, before, s.Snake.Len())
		}
	}
}

func TestAppleNeverOnSnake(t *testing.T) {
	g := grid.New(8, 6)
	s := NewState()

	// Scripted walk that repeatedly crosses the apple's row and column.
	script := []Direction{
		DirUp, DirUp, DirUp, DirLeft, DirLeft, DirDown, DirDown,
		DirRight, DirRight, DirRight, DirUp, DirLeft, DirLeft, DirLeft,
		DirDown, DirDown, DirDown, DirRight, DirUp, DirUp,
	}
	for i, d := range script {
		s = Turn(s, d, g)
		if s.BoardFull() {
			break
		}
		if s.Apple == s.Snake.Head {
			t.Fatalf("step %d: apple on head at %v", i, s.Apple)
		}
		for _, seg := range s.Snake.Tail {
			if s.Apple == seg {
				t.Fatalf("step %d: apple on tail segment %v", i, seg)
			}
		}
	}
}

func TestTransitionsAreDeterministic(t *testing.T) {
	g := grid.New(16, 12)
	script := []Direction{DirUp, DirUp, DirLeft, DirDown, DirRight, DirRight, DirDown}

	run := func() State {
		s := NewState()
		for _, d := range script {
			s = Turn(s, d, g)
			s = Step(s, g)
		}
		return s
	}

	a, b := run(), run()
	if a.Snake.Head != b.Snake.Head || a.Snake.Heading != b.Snake.Heading {
		t.Errorf("snake diverged: %+v vs %+v", a.Snake, b.Snake)
	}
	if a.Apple != b.Apple {
		t.Errorf("apple diverged: %v vs %v", a.Apple, b.Apple)
	}
	if len(a.Snake.Tail) != len(b.Snake.Tail) {
		t.Fatalf("tail lengths diverged: %d vs %d", len(a.Snake.Tail), len(b.Snake.Tail))
	}
	for i := range a.Snake.Tail {
		if a.Snake.Tail[i] != b.Snake.Tail[i] {
			t.Errorf("tail[%d] diverged: %v vs %v", i, a.Snake.Tail[i], b.Snake.Tail[i])
		}
	}
}

func TestReversalIsAllowed(t *testing.T) {
	g := grid.New(16, 12)
	s := NewState() // heading right, head (4,5), tail [(3,5)]

	next := Turn(s, DirLeft, g)

	// The head walks straight back onto the tail cell; the game has no
	// self-collision rule, so the move simply happens.
	if next.Snake.Heading != DirLeft {
		t.Errorf("heading = %v, expected left", next.Snake.Heading)
	}
	if next.Snake.Head != (grid.Location{X: 3, Y: 5}) {
		t.Errorf("head = %v, expected (3,5)", next.Snake.Head)
	}
	if len(next.Snake.Tail) != 1 || next.Snake.Tail[0] != (grid.Location{X: 4, Y: 5}) {
		t.Errorf("tail = %v, expected [(4,5)]", next.Snake.Tail)
	}
}

func TestApplyDirectionDoesNotMove(t *testing.T) {
	s := NewState()

	next := ApplyDirection(s, DirDown)

	if next.Snake.Heading != DirDown {
		t.Errorf("heading = %v, expected down", next.Snake.Heading)
	}
	if next.Snake.Head != s.Snake.Head {
		t.Errorf("head moved to %v on a direction change", next.Snake.Head)
	}
	if next.Apple != s.Apple {
		t.Errorf("apple moved to %v on a direction change", next.Apple)
	}
	// The input state is untouched.
	if s.Snake.Heading != DirRight {
		t.Errorf("input state mutated: heading = %v", s.Snake.Heading)
	}
}

func TestStepWithTaillessSnake(t *testing.T) {
	g := grid.New(5, 5)
	s := State{
		Snake: Snake{Heading: DirDown, Head: grid.Location{X: 2, Y: 2}},
		Apple: grid.Location{X: 0, Y: 0},
	}

	next := Step(s, g)

	if next.Snake.Head != (grid.Location{X: 2, Y: 3}) {
		t.Errorf("head = %v, expected (2,3)", next.Snake.Head)
	}
	if len(next.Snake.Tail) != 0 {
		t.Errorf("tail = %v, expected empty", next.Snake.Tail)
	}
}
