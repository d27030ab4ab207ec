package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loopMap traps the guard in a 2x2 circuit without any added obstruction.
const loopMap = `.#..
.^.#
#...
..#.
`

func mustParse(t *testing.T, s string) (*Grid, WalkState) {
	t.Helper()
	g, start, err := Parse(s)
	require.NoError(t, err)
	return g, start
}

func TestSimulate_Example(t *testing.T) {
	g, start := mustParse(t, exampleMap)

	out, err := Simulate(g, start)
	require.NoError(t, err)
	assert.True(t, out.Exited())
	assert.Len(t, out.Visited, 41)
	assert.Equal(t, start.Pos, out.Visited[0], "start is the first visited position")
}

func TestSimulate_VisitedIsDistinct(t *testing.T) {
	g, start := mustParse(t, exampleMap)
	out, err := Simulate(g, start)
	require.NoError(t, err)

	seen := make(map[Position]bool, len(out.Visited))
	for _, p := range out.Visited {
		assert.False(t, seen[p], "duplicate position %v", p)
		assert.True(t, g.InBounds(p))
		assert.Equal(t, Open, g.At(p))
		seen[p] = true
	}
}

func TestSimulate_StateBound(t *testing.T) {
	for name, m := range map[string]string{"example": exampleMap, "loop": loopMap} {
		g, start := mustParse(t, m)
		out, err := Simulate(g, start)
		require.NoError(t, err, name)
		assert.LessOrEqual(t, out.States, g.Rows()*g.Cols()*4, name)
		assert.Positive(t, out.States, name)
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	g, start := mustParse(t, exampleMap)
	first, err := Simulate(g, start)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Simulate(g, start)
		require.NoError(t, err)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
	}
}

func TestSimulate_Loop(t *testing.T) {
	g, start := mustParse(t, loopMap)
	out, err := Simulate(g, start)
	require.NoError(t, err)
	assert.True(t, out.Looped)
	assert.Nil(t, out.Visited)
}

func TestSimulate_SingleCell(t *testing.T) {
	g, start := mustParse(t, "^")
	out, err := Simulate(g, start)
	require.NoError(t, err)
	assert.Equal(t, []Position{{}}, out.Visited)
	assert.Equal(t, 1, out.States)
}

func TestSimulate_TurnThenExit(t *testing.T) {
	// Blocked north, so the guard turns east and immediately leaves.
	g, start := mustParse(t, "#\n^")
	out, err := Simulate(g, start)
	require.NoError(t, err)
	assert.Equal(t, []Position{{Row: 1, Col: 0}}, out.Visited)
	assert.Equal(t, 2, out.States)
}

func TestSimulate_DoubleTurn(t *testing.T) {
	// Dead end: north and east blocked, guard walks back south.
	g, start := mustParse(t, ".#.\n.^#\n...")
	out, err := Simulate(g, start)
	require.NoError(t, err)
	assert.Equal(t, []Position{{Row: 1, Col: 1}, {Row: 2, Col: 1}}, out.Visited)
}

func TestSimulate_BoxedIn(t *testing.T) {
	g, start := mustParse(t, ".#.\n#^#\n.#.")
	_, err := Simulate(g, start)
	assert.ErrorIs(t, err, ErrMalformedGrid)
}

func TestSimulate_StartOutside(t *testing.T) {
	g, _ := mustParse(t, "^.")
	_, err := Simulate(g, WalkState{Pos: Position{Row: 5, Col: 5}})
	assert.ErrorIs(t, err, ErrMalformedGrid)
}

func TestSimulateBlocked_DoesNotMutateBase(t *testing.T) {
	g, start := mustParse(t, exampleMap)
	block := Position{Row: 6, Col: 3}

	out, err := SimulateBlocked(g, start, block)
	require.NoError(t, err)
	assert.True(t, out.Looped)
	assert.Equal(t, Open, g.At(block))

	plain, err := Simulate(g, start)
	require.NoError(t, err)
	assert.Len(t, plain.Visited, 41)
}

func TestSimulateBlocked_OffPathIsNoop(t *testing.T) {
	g, start := mustParse(t, exampleMap)
	base, err := Simulate(g, start)
	require.NoError(t, err)

	onPath := make(map[Position]bool)
	for _, p := range base.Visited {
		onPath[p] = true
	}
	for _, p := range g.OpenCells() {
		if onPath[p] {
			continue
		}
		out, err := SimulateBlocked(g, start, p)
		require.NoError(t, err)
		if diff := cmp.Diff(base, out); diff != "" {
			t.Errorf("blocking %v off the path changed the walk:\n%s", p, diff)
		}
	}
}

func TestSimulateBlocked_OutOfBounds(t *testing.T) {
	g, start := mustParse(t, exampleMap)
	_, err := SimulateBlocked(g, start, Position{Row: -1, Col: 0})
	assert.ErrorIs(t, err, ErrMalformedGrid)
}
