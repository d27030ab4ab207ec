// Package grid simulates a guard patrolling a rectangular map.
//
// The guard walks forward until the cell ahead is blocking, then turns 90°
// clockwise in place. A walk ends either when the guard steps off the map
// (Exited) or when it returns to a (position, heading) pair it has already
// occupied (Looped). The map is immutable after Parse; obstruction searches
// layer a single extra blocker over the shared base grid instead of copying it.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Map characters.
const (
	charOpen     = '.'
	charBlocking = '#'
	charGuard    = '^'
)

// ErrMalformedGrid is returned when a grid is well-formed textually but cannot
// host a walk: no guard, several guards, or a guard boxed in on all four sides.
var ErrMalformedGrid = errors.New("malformed grid")

// ParseError reports a textual problem with grid input.
// Line and Col are 1-based; Col is 0 when the whole line is at fault.
type ParseError struct {
	Line   int
	Col    int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Col > 0 {
		return fmt.Sprintf("grid line %d col %d: %s", e.Line, e.Col, e.Reason)
	}
	if e.Line > 0 {
		return fmt.Sprintf("grid line %d: %s", e.Line, e.Reason)
	}
	return "grid: " + e.Reason
}

// Cell is the content of a single map square.
type Cell uint8

const (
	Open Cell = iota
	Blocking
)

// Grid is a rows×cols map of cells stored row-major.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// New builds a grid from a row-major cell slice. It is mostly useful in tests;
// puzzle input goes through Parse.
func New(rows, cols int, cells []Cell) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &ParseError{Reason: "empty grid"}
	}
	if len(cells) != rows*cols {
		return nil, &ParseError{Reason: fmt.Sprintf("have %d cells, want %d", len(cells), rows*cols)}
	}
	c := make([]Cell, len(cells))
	copy(c, cells)
	return &Grid{rows: rows, cols: cols, cells: c}, nil
}

// Parse reads a map made of '.', '#' and a single '^'. Lines must all have the
// same length; a trailing newline and CRLF line endings are accepted.
// The returned start state faces North on the '^' square.
func Parse(input string) (*Grid, WalkState, error) {
	var start WalkState
	lines := strings.Split(strings.TrimRight(input, "\r\n"), "\n")
	if len(lines) == 1 && strings.TrimSpace(lines[0]) == "" {
		return nil, start, &ParseError{Reason: "empty grid"}
	}

	cols := len(strings.TrimSuffix(lines[0], "\r"))
	if cols == 0 {
		return nil, start, &ParseError{Line: 1, Reason: "empty line"}
	}

	g := &Grid{rows: len(lines), cols: cols, cells: make([]Cell, 0, len(lines)*cols)}
	guards := 0
	for r, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if len(line) != cols {
			return nil, start, &ParseError{
				Line:   r + 1,
				Reason: fmt.Sprintf("line has %d columns, want %d", len(line), cols),
			}
		}
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case charOpen:
				g.cells = append(g.cells, Open)
			case charBlocking:
				g.cells = append(g.cells, Blocking)
			case charGuard:
				g.cells = append(g.cells, Open)
				start = WalkState{Pos: Position{Row: r, Col: c}, Heading: North}
				guards++
			default:
				return nil, start, &ParseError{
					Line:   r + 1,
					Col:    c + 1,
					Reason: fmt.Sprintf("unexpected character %q", line[c]),
				}
			}
		}
	}

	switch guards {
	case 0:
		return nil, start, fmt.Errorf("%w: no guard marker %q", ErrMalformedGrid, charGuard)
	case 1:
		return g, start, nil
	default:
		return nil, start, fmt.Errorf("%w: %d guard markers, want 1", ErrMalformedGrid, guards)
	}
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies on the map.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell at p. p must be in bounds.
func (g *Grid) At(p Position) Cell {
	return g.cells[g.index(p)]
}

// OpenCells returns every open position in row-major order.
func (g *Grid) OpenCells() []Position {
	var out []Position
	for i, c := range g.cells {
		if c == Open {
			out = append(out, Position{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}

func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// stateIndex maps a walk state onto [0, rows*cols*4).
func (g *Grid) stateIndex(s WalkState) int {
	return g.index(s.Pos)*headingCount + int(s.Heading)
}
