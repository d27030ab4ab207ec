package app

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"sync"

	"github.com/corey/advent/internal/domain/puzzle"
	"github.com/corey/advent/internal/ports"
	"go.uber.org/zap"
)

var inputFileRx = regexp.MustCompile(`^day_(\d{2})\.txt$`)

// DayFromInputPath extracts the day number from a day_NN.txt path.
func DayFromInputPath(path string) (int, bool) {
	m := inputFileRx.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 0, false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return day, true
}

// Watch re-solves a day every time its input file changes, until ctx is
// done. Each result (or error) is passed to report. Re-solves are serialised.
func (r *Runner) Watch(ctx context.Context, w ports.Watcher, parts []puzzle.Part, report func(puzzle.Answer, error)) error {
	var mu sync.Mutex
	err := w.Watch(r.inputDir, func(path string) {
		day, ok := DayFromInputPath(path)
		if !ok {
			return
		}
		if _, err := r.registry.Get(day); err != nil {
			r.logger.Debug("Ignoring input for unregistered day", zap.String("path", path), zap.Int("day", day))
			return
		}
		if ctx.Err() != nil {
			return
		}

		mu.Lock()
		defer mu.Unlock()
		r.logger.Info("Input changed", zap.String("path", path), zap.Int("day", day))
		for _, p := range parts {
			report(r.Solve(ctx, day, p))
		}
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", r.inputDir, err)
	}

	<-ctx.Done()
	return w.Stop()
}
