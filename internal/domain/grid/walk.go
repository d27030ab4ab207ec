package grid

import "fmt"

// errBoxedIn marks a guard with a blocker on all four sides. It wraps
// ErrMalformedGrid.
var errBoxedIn = fmt.Errorf("%w: guard boxed in", ErrMalformedGrid)

// Outcome is the terminal result of a walk.
type Outcome struct {
	// Looped is true when the guard re-entered a state it had already occupied.
	Looped bool

	// Visited lists the distinct positions occupied before the guard left the
	// map, in first-visit order. It is nil when Looped is true.
	Visited []Position

	// States is the number of walk states recorded. It never exceeds
	// rows*cols*4.
	States int
}

// Exited reports whether the guard walked off the map.
func (o Outcome) Exited() bool { return !o.Looped }

// view is the grid as seen by one walk: the shared base plus at most one
// extra blocker. The base is never written.
type view struct {
	base     *Grid
	extra    Position
	hasExtra bool
}

func (v view) blocked(p Position) bool {
	if v.hasExtra && p == v.extra {
		return true
	}
	return v.base.At(p) == Blocking
}

// Simulate walks the guard from start until it exits the map or loops.
func Simulate(g *Grid, start WalkState) (Outcome, error) {
	return view{base: g}.walk(start)
}

// SimulateBlocked walks the guard as Simulate does, with the cell at block
// treated as Blocking. g is not modified.
func SimulateBlocked(g *Grid, start WalkState, block Position) (Outcome, error) {
	if !g.InBounds(block) {
		return Outcome{}, fmt.Errorf("%w: obstruction %v outside %dx%d map", ErrMalformedGrid, block, g.rows, g.cols)
	}
	return view{base: g, extra: block, hasExtra: true}.walk(start)
}

func (v view) walk(start WalkState) (Outcome, error) {
	g := v.base
	if !g.InBounds(start.Pos) {
		return Outcome{}, fmt.Errorf("%w: guard at %v outside %dx%d map", ErrMalformedGrid, start.Pos, g.rows, g.cols)
	}
	if v.blocked(start.Pos) {
		return Outcome{}, fmt.Errorf("%w: guard at %v stands on a blocker", ErrMalformedGrid, start.Pos)
	}

	seen := make([]bool, g.rows*g.cols*headingCount)
	occupied := make([]bool, g.rows*g.cols)
	var visited []Position
	states := 0

	cur := start
	turns := 0
	for {
		si := g.stateIndex(cur)
		if seen[si] {
			return Outcome{Looped: true, States: states}, nil
		}
		seen[si] = true
		states++
		if pi := g.index(cur.Pos); !occupied[pi] {
			occupied[pi] = true
			visited = append(visited, cur.Pos)
		}

		ahead := cur.Pos.Step(cur.Heading)
		if !g.InBounds(ahead) {
			return Outcome{Visited: visited, States: states}, nil
		}
		if v.blocked(ahead) {
			// A fourth consecutive turn would face the original heading again
			// without having moved: every neighbour is a blocker.
			turns++
			if turns == headingCount {
				return Outcome{}, fmt.Errorf("%w at %v", errBoxedIn, cur.Pos)
			}
			cur.Heading = cur.Heading.Right()
			continue
		}
		turns = 0
		cur.Pos = ahead
	}
}
