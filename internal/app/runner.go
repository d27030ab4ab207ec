// Package app wires together adapters and domain logic.
// It resolves project paths and config, and runs solvers against input files
// with the answer cache in front of them.
package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/corey/advent/internal/domain/puzzle"
	"github.com/corey/advent/internal/ports"
	"go.uber.org/zap"
)

// Runner reads a day's input, consults the answer cache and runs the solver.
type Runner struct {
	registry *puzzle.Registry
	store    ports.Storage
	inputDir string
	logger   *zap.Logger
	now      func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithStore puts an answer cache in front of the solvers.
func WithStore(s ports.Storage) RunnerOption {
	return func(r *Runner) { r.store = s }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner returns a runner reading day_NN.txt files from inputDir.
func NewRunner(registry *puzzle.Registry, inputDir string, opts ...RunnerOption) *Runner {
	r := &Runner{
		registry: registry,
		inputDir: inputDir,
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// InputDir returns the directory input files are read from.
func (r *Runner) InputDir() string { return r.inputDir }

// InputPath returns the input file for day inside dir.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day_%02d.txt", day))
}

// Digest identifies an input text in the answer cache.
func Digest(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// Solve answers one part of one day. The returned Answer always carries the
// day and part, even alongside an error.
func (r *Runner) Solve(ctx context.Context, day int, part puzzle.Part) (puzzle.Answer, error) {
	ans := puzzle.Answer{Day: day, Part: part}

	d, err := r.registry.Get(day)
	if err != nil {
		return ans, err
	}
	solver := d.Solver(part)
	if solver == nil {
		return ans, fmt.Errorf("day %02d has no part %d", day, part)
	}

	path := InputPath(r.inputDir, day)
	data, err := os.ReadFile(path)
	if err != nil {
		return ans, fmt.Errorf("read input for day %02d: %w", day, err)
	}
	input := string(data)
	key := ports.AnswerKey{Day: day, Part: int(part), Revision: d.Revision, Digest: Digest(input)}
	log := r.logger.With(zap.Int("day", day), zap.Int("part", int(part)))

	if r.store != nil {
		rec, err := r.store.LoadAnswer(key)
		switch {
		case err != nil:
			log.Warn("Answer cache read failed", zap.Error(err))
		case rec != nil:
			ans.Value = rec.Value
			ans.Elapsed = time.Duration(rec.ElapsedNs)
			ans.Cached = true
			log.Debug("Answer served from cache", zap.Int64("value", rec.Value))
			return ans, nil
		}
	}

	log.Debug("Solving", zap.String("path", path), zap.Int("bytes", len(data)))
	start := r.now()
	value, err := solver(ctx, input)
	elapsed := r.now().Sub(start)
	if err != nil {
		return ans, fmt.Errorf("solve day %02d part %d: %w", day, part, err)
	}
	ans.Value = value
	ans.Elapsed = elapsed
	log.Debug("Solved", zap.Int64("value", value), zap.Duration("elapsed", elapsed))

	if r.store != nil {
		rec := &ports.AnswerRecord{
			Day:       day,
			Part:      int(part),
			Revision:  key.Revision,
			Digest:    key.Digest,
			Value:     value,
			ElapsedNs: int64(elapsed),
			SolvedAt:  r.now().Unix(),
		}
		if err := r.store.SaveAnswer(rec); err != nil {
			log.Warn("Answer cache write failed", zap.Error(err))
		}
	}
	return ans, nil
}

// SolveDay answers the given parts of one day in order, stopping at the
// first error.
func (r *Runner) SolveDay(ctx context.Context, day int, parts []puzzle.Part) ([]puzzle.Answer, error) {
	answers := make([]puzzle.Answer, 0, len(parts))
	for _, p := range parts {
		ans, err := r.Solve(ctx, day, p)
		if err != nil {
			return answers, err
		}
		answers = append(answers, ans)
	}
	return answers, nil
}
