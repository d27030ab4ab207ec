package grid

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// SearchOption configures CountLoopObstructions.
type SearchOption func(*searchConfig)

type searchConfig struct {
	workers    int
	exhaustive bool
}

// WithWorkers bounds the number of candidate walks run at once.
// Values below 1 mean one worker.
func WithWorkers(n int) SearchOption {
	return func(c *searchConfig) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// WithExhaustiveSearch tries every open cell instead of only the cells on
// the unobstructed path. It costs more walks for the same count. If the
// unobstructed walk already loops, both modes count 0.
func WithExhaustiveSearch() SearchOption {
	return func(c *searchConfig) { c.exhaustive = true }
}

// Candidates returns the positions where a single new blocker might change
// the walk: every position the unobstructed guard visits, minus the start.
// A blocker anywhere else is never touched by the guard. If the unobstructed
// walk already loops there is no exit path to divert and the result is empty.
func Candidates(g *Grid, start WalkState) ([]Position, error) {
	out, err := Simulate(g, start)
	if err != nil {
		return nil, err
	}
	if out.Looped {
		return nil, nil
	}
	cands := make([]Position, 0, len(out.Visited))
	for _, p := range out.Visited {
		if p != start.Pos {
			cands = append(cands, p)
		}
	}
	return cands, nil
}

// CountLoopObstructions counts the single-cell obstructions that trap the
// guard in a loop. A candidate that walls the guard in on all four sides
// traps it turning in place, which counts as a loop. Each candidate is simulated independently against the
// shared, read-only base grid; candidates run concurrently on up to
// WithWorkers goroutines (runtime.NumCPU by default).
func CountLoopObstructions(ctx context.Context, g *Grid, start WalkState, opts ...SearchOption) (int, error) {
	cfg := searchConfig{workers: runtime.NumCPU()}
	for _, o := range opts {
		o(&cfg)
	}

	var cands []Position
	if cfg.exhaustive {
		// Validate the start before fanning out.
		out, err := Simulate(g, start)
		if err != nil {
			return 0, err
		}
		if out.Looped {
			return 0, nil
		}
		for _, p := range g.OpenCells() {
			if p != start.Pos {
				cands = append(cands, p)
			}
		}
	} else {
		var err error
		cands, err = Candidates(g, start)
		if err != nil {
			return 0, err
		}
	}

	var loops atomic.Int64
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for _, p := range cands {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := SimulateBlocked(g, start, p)
			if errors.Is(err, errBoxedIn) {
				loops.Add(1)
				return nil
			}
			if err != nil {
				return err
			}
			if out.Looped {
				loops.Add(1)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int(loops.Load()), nil
}
