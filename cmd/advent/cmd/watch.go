package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/corey/advent/internal/adapters/fsnotify"
	"github.com/corey/advent/internal/domain/puzzle"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchPart int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-solve a day whenever its input file changes",
	Long:  "Watches the input directory and re-runs day NN each time day_NN.txt is written. Ctrl-C stops.",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().IntVarP(&watchPart, "part", "p", 0, "Solve only part 1 or 2")
}

func runWatch(cmd *cobra.Command, args []string) error {
	parts, err := selectedParts(watchPart)
	if err != nil {
		return usageError(err)
	}
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	runner, closeRunner, err := newRunner(reg)
	if err != nil {
		return err
	}
	defer closeRunner()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s⚡ watching %s%s (ctrl-c to stop)\n", colorBold, runner.InputDir(), colorReset)
	return runner.Watch(ctx, w, parts, func(ans puzzle.Answer, err error) {
		if err != nil {
			logger.Debug("Re-solve failed", zap.Int("day", ans.Day), zap.Error(err))
			fmt.Fprintln(out, formatFailure(ans, err))
			return
		}
		fmt.Fprintln(out, formatAnswer(ans))
	})
}
