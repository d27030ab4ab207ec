package cmd

import (
	"fmt"
	"strconv"

	"github.com/corey/advent/internal/domain/puzzle"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runPart int

var runCmd = &cobra.Command{
	Use:   "run [DAY...]",
	Short: "Solve puzzle days",
	Long: `Solves the given days (every registered day when none are given) from
input/day_NN.txt. Answers for unchanged input come from the cache.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVarP(&runPart, "part", "p", 0, "Solve only part 1 or 2")
}

func runRun(cmd *cobra.Command, args []string) error {
	parts, err := selectedParts(runPart)
	if err != nil {
		return usageError(err)
	}

	reg, err := newRegistry()
	if err != nil {
		return err
	}
	dayNums, err := parseDays(args, reg)
	if err != nil {
		return err
	}

	runner, closeRunner, err := newRunner(reg)
	if err != nil {
		return err
	}
	defer closeRunner()

	ctx := cmd.Context()
	for _, day := range dayNums {
		for _, p := range parts {
			ans, err := runner.Solve(ctx, day, p)
			if err != nil {
				logger.Debug("Solve failed", zap.Int("day", day), zap.Int("part", int(p)), zap.Error(err))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatAnswer(ans))
		}
	}
	return nil
}

// selectedParts maps the --part flag to the parts to solve; 0 means both.
func selectedParts(n int) ([]puzzle.Part, error) {
	if n == 0 {
		return puzzle.Parts, nil
	}
	p, err := puzzle.ParsePart(strconv.Itoa(n))
	if err != nil {
		return nil, err
	}
	return []puzzle.Part{p}, nil
}

// parseDays turns DAY arguments into day numbers. No arguments selects
// every registered day.
func parseDays(args []string, reg *puzzle.Registry) ([]int, error) {
	if len(args) == 0 {
		var out []int
		for _, d := range reg.Days() {
			out = append(out, d.Number)
		}
		return out, nil
	}
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < 0 {
			return nil, usageError(fmt.Errorf("invalid day %q", a))
		}
		if _, err := reg.Get(n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
