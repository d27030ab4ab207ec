package grid

import "fmt"

// Heading is one of the four cardinal directions.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

const headingCount = 4

// Right returns the heading after a 90° clockwise turn.
func (h Heading) Right() Heading {
	return (h + 1) % headingCount
}

// Delta returns the row and column offset of one step in direction h.
func (h Heading) Delta() (dRow, dCol int) {
	switch h {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default:
		return 0, -1
	}
}

func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("heading(%d)", uint8(h))
}

// Position is a (row, column) coordinate.
type Position struct {
	Row int
	Col int
}

// Step returns the neighbouring position in direction h.
func (p Position) Step(h Heading) Position {
	dr, dc := h.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// WalkState fully determines the guard's future: where it stands and which
// way it faces.
type WalkState struct {
	Pos     Position
	Heading Heading
}
