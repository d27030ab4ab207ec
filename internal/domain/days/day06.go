package days

import (
	"context"
	"fmt"

	"github.com/corey/advent/internal/domain/grid"
)

type day06 struct {
	workers int
}

// partOne counts the distinct squares the guard covers before leaving.
func (d day06) partOne(_ context.Context, input string) (int64, error) {
	g, start, err := grid.Parse(input)
	if err != nil {
		return 0, fmt.Errorf("guard map: %w", err)
	}
	out, err := grid.Simulate(g, start)
	if err != nil {
		return 0, fmt.Errorf("guard map: %w", err)
	}
	if out.Looped {
		return 0, fmt.Errorf("guard map: %w: guard never leaves the map", grid.ErrMalformedGrid)
	}
	return int64(len(out.Visited)), nil
}

// partTwo counts the single obstructions that trap the guard in a loop.
func (d day06) partTwo(ctx context.Context, input string) (int64, error) {
	g, start, err := grid.Parse(input)
	if err != nil {
		return 0, fmt.Errorf("guard map: %w", err)
	}
	n, err := grid.CountLoopObstructions(ctx, g, start, grid.WithWorkers(d.workers))
	if err != nil {
		return 0, fmt.Errorf("guard map: %w", err)
	}
	return int64(n), nil
}
