package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/corey/advent/internal/adapters/ahocorasick"
	"github.com/corey/advent/internal/adapters/bbolt"
	"github.com/corey/advent/internal/domain/days"
	"github.com/corey/advent/internal/domain/grid"
	"github.com/corey/advent/internal/domain/puzzle"
	"github.com/corey/advent/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const guardMap = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

// countingDay returns a day whose part one is len(input) and counts calls.
func countingDay(n int, calls *atomic.Int32) puzzle.Day {
	solve := func(_ context.Context, input string) (int64, error) {
		calls.Add(1)
		return int64(len(input)), nil
	}
	return puzzle.Day{Number: n, PartOne: solve, PartTwo: solve}
}

func writeInput(t *testing.T, dir string, day int, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(InputPath(dir, day), []byte(content), 0644))
}

func newTestStore(t *testing.T) *bbolt.Store {
	t.Helper()
	store, err := bbolt.NewStore(filepath.Join(t.TempDir(), "answers.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("in", "day_06.txt"), InputPath("in", 6))
	assert.Equal(t, filepath.Join("in", "day_12.txt"), InputPath("in", 12))
}

func TestDigest(t *testing.T) {
	assert.Equal(t, Digest("abc"), Digest("abc"))
	assert.NotEqual(t, Digest("abc"), Digest("abd"))
	assert.Len(t, Digest(""), 64)
}

func TestRunner_SolveWithoutCache(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32
	reg := puzzle.NewRegistry()
	require.NoError(t, reg.Register(countingDay(1, &calls)))
	writeInput(t, dir, 1, "hello")

	r := NewRunner(reg, dir)
	for i := 0; i < 2; i++ {
		ans, err := r.Solve(context.Background(), 1, puzzle.PartOne)
		require.NoError(t, err)
		assert.Equal(t, int64(5), ans.Value)
		assert.False(t, ans.Cached)
	}
	assert.Equal(t, int32(2), calls.Load())
}

func TestRunner_CacheHit(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32
	reg := puzzle.NewRegistry()
	require.NoError(t, reg.Register(countingDay(1, &calls)))
	writeInput(t, dir, 1, "hello")

	store := newTestStore(t)
	r := NewRunner(reg, dir, WithStore(store))

	first, err := r.Solve(context.Background(), 1, puzzle.PartOne)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := r.Solve(context.Background(), 1, puzzle.PartOne)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Value, second.Value)
	assert.Equal(t, int32(1), calls.Load(), "second call is served from the cache")

	rec, err := store.LoadAnswer(ports.AnswerKey{Day: 1, Part: 1, Digest: Digest("hello")})
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, int64(5), rec.Value)
}

func TestRunner_EditedInputMissesCache(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32
	reg := puzzle.NewRegistry()
	require.NoError(t, reg.Register(countingDay(1, &calls)))
	r := NewRunner(reg, dir, WithStore(newTestStore(t)))

	writeInput(t, dir, 1, "hello")
	_, err := r.Solve(context.Background(), 1, puzzle.PartOne)
	require.NoError(t, err)

	writeInput(t, dir, 1, "hello, world")
	ans, err := r.Solve(context.Background(), 1, puzzle.PartOne)
	require.NoError(t, err)
	assert.False(t, ans.Cached)
	assert.Equal(t, int64(12), ans.Value)
	assert.Equal(t, int32(2), calls.Load())
}

func TestRunner_RevisionBumpMissesCache(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 1, "hello")
	store := newTestStore(t)

	var calls atomic.Int32
	before := puzzle.NewRegistry()
	require.NoError(t, before.Register(countingDay(1, &calls)))
	_, err := NewRunner(before, dir, WithStore(store)).Solve(context.Background(), 1, puzzle.PartOne)
	require.NoError(t, err)

	fixed := countingDay(1, &calls)
	fixed.Revision = 1
	after := puzzle.NewRegistry()
	require.NoError(t, after.Register(fixed))
	r := NewRunner(after, dir, WithStore(store))

	ans, err := r.Solve(context.Background(), 1, puzzle.PartOne)
	require.NoError(t, err)
	assert.False(t, ans.Cached, "answers from an older solver revision are not served")
	assert.Equal(t, int32(2), calls.Load())

	ans, err = r.Solve(context.Background(), 1, puzzle.PartOne)
	require.NoError(t, err)
	assert.True(t, ans.Cached)
	assert.Equal(t, int32(2), calls.Load())
}

func TestRunner_UnknownDay(t *testing.T) {
	r := NewRunner(puzzle.NewRegistry(), t.TempDir())
	ans, err := r.Solve(context.Background(), 9, puzzle.PartOne)
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
	assert.Equal(t, 9, ans.Day)
	assert.Equal(t, puzzle.PartOne, ans.Part)
}

func TestRunner_MissingInput(t *testing.T) {
	var calls atomic.Int32
	reg := puzzle.NewRegistry()
	require.NoError(t, reg.Register(countingDay(4, &calls)))

	_, err := NewRunner(reg, t.TempDir()).Solve(context.Background(), 4, puzzle.PartTwo)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Zero(t, calls.Load())
}

func TestRunner_SolverErrorNotCached(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("boom")
	fail := func(context.Context, string) (int64, error) { return 0, boom }
	reg := puzzle.NewRegistry()
	require.NoError(t, reg.Register(puzzle.Day{Number: 2, PartOne: fail, PartTwo: fail}))
	writeInput(t, dir, 2, "x")

	store := newTestStore(t)
	_, err := NewRunner(reg, dir, WithStore(store)).Solve(context.Background(), 2, puzzle.PartOne)
	assert.ErrorIs(t, err, boom)

	list, err := store.ListAnswers()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRunner_SolveDay_GuardMap(t *testing.T) {
	dir := t.TempDir()
	reg := puzzle.NewRegistry()
	require.NoError(t, days.Register(reg, days.Options{NewScanner: ahocorasick.Factory, Workers: 4}))
	writeInput(t, dir, 6, guardMap)

	answers, err := NewRunner(reg, dir).SolveDay(context.Background(), 6, puzzle.Parts)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, int64(41), answers[0].Value)
	assert.Equal(t, int64(6), answers[1].Value)
}

func TestRunner_SolveDay_StopsAtError(t *testing.T) {
	dir := t.TempDir()
	reg := puzzle.NewRegistry()
	require.NoError(t, days.Register(reg, days.Options{NewScanner: ahocorasick.Factory}))
	writeInput(t, dir, 6, ".#.\n#^#\n.#.\n")

	answers, err := NewRunner(reg, dir).SolveDay(context.Background(), 6, puzzle.Parts)
	assert.ErrorIs(t, err, grid.ErrMalformedGrid)
	assert.Empty(t, answers)
}
