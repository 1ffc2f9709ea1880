package model

import "fmt"

// Direction is one of the four cardinal moves. The values follow the
// clockwise order right, forward, left, back so that (d+2)%4 is the
// opposite direction.
type Direction int

const (
	Right Direction = iota
	Forward
	Left
	Back
)

// Directions lists every direction in clockwise order.
var Directions = [4]Direction{Right, Forward, Left, Back}

// Delta returns the row and column change of one step.
func (d Direction) Delta() (int, int) {
	switch d {
	case Right:
		return 0, 1
	case Forward:
		return 1, 0
	case Left:
		return 0, -1
	case Back:
		return -1, 0
	default:
		panic(d)
	}
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) Name() string {
	switch d {
	case Right:
		return "right"
	case Forward:
		return "forward"
	case Left:
		return "left"
	case Back:
		return "back"
	default:
		return fmt.Sprintf("n/a:%d", int(d))
	}
}

func (d Direction) String() string {
	return d.Name()
}

// MoveResult tells whether a single step was committed and, if not, which
// guard rejected it.
type MoveResult int

const (
	Moved MoveResult = iota
	OutOfBounds
	Blocked
	Depleted
)

func (r MoveResult) Name() string {
	switch r {
	case Moved:
		return "MOVED"
	case OutOfBounds:
		return "OUT_OF_BOUNDS"
	case Blocked:
		return "BLOCKED"
	case Depleted:
		return "DEPLETED"
	default:
		return fmt.Sprintf("N/A(%d)", int(r))
	}
}

func (r MoveResult) String() string {
	return r.Name()
}
