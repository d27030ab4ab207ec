// Package puzzle defines the vocabulary shared by all day solvers: parts,
// solver functions, answers and the registry the CLI looks days up in.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"
)

// ErrUnknownDay is returned when no solver is registered for a day.
var ErrUnknownDay = errors.New("unknown day")

// Part selects the first or second question of a day.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

// Parts lists both parts in order.
var Parts = []Part{PartOne, PartTwo}

// ParsePart accepts "1" or "2".
func ParsePart(s string) (Part, error) {
	n, err := strconv.Atoi(s)
	if err != nil || (n != int(PartOne) && n != int(PartTwo)) {
		return 0, fmt.Errorf("invalid part %q: want 1 or 2", s)
	}
	return Part(n), nil
}

// Solver computes one answer from the raw puzzle input.
type Solver func(ctx context.Context, input string) (int64, error)

// Day bundles the two solvers of a puzzle day.
type Day struct {
	Number int
	Title  string

	// Revision is bumped whenever a change to the solvers changes their
	// answers. Cached answers from another revision are not served.
	Revision int

	PartOne Solver
	PartTwo Solver
}

// Solver returns the solver for part p, or nil.
func (d Day) Solver(p Part) Solver {
	switch p {
	case PartOne:
		return d.PartOne
	case PartTwo:
		return d.PartTwo
	}
	return nil
}

// Answer is one solved part.
type Answer struct {
	Day     int
	Part    Part
	Value   int64
	Elapsed time.Duration
	Cached  bool
}

// Registry maps day numbers to solvers. Safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	days map[int]Day
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{days: make(map[int]Day)}
}

// Register adds d. Registering the same day twice is an error, as is a day
// missing either solver.
func (r *Registry) Register(d Day) error {
	if d.Number < 0 {
		return fmt.Errorf("register day %d: negative day", d.Number)
	}
	if d.PartOne == nil || d.PartTwo == nil {
		return fmt.Errorf("register day %d: missing solver", d.Number)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.days[d.Number]; ok {
		return fmt.Errorf("register day %d: already registered", d.Number)
	}
	r.days[d.Number] = d
	return nil
}

// Get returns the day numbered n.
func (r *Registry) Get(n int) (Day, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.days[n]
	if !ok {
		return Day{}, fmt.Errorf("%w: %d", ErrUnknownDay, n)
	}
	return d, nil
}

// Days returns every registered day in ascending order.
func (r *Registry) Days() []Day {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Day, 0, len(r.days))
	for _, d := range r.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}
