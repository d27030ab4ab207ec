package cmd

import (
	"fmt"
	"os"

	"github.com/corey/advent/internal/adapters/ahocorasick"
	"github.com/corey/advent/internal/adapters/bbolt"
	"github.com/corey/advent/internal/app"
	"github.com/corey/advent/internal/domain/days"
	"github.com/corey/advent/internal/domain/puzzle"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose  bool
	inputDir string
	noCache  bool
	workers  int
)

// Resolved in PersistentPreRunE, shared by every subcommand.
var (
	paths  *app.Paths
	cfg    *app.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:               "advent",
	Short:             "advent: Advent of Code solutions",
	Long:              "Solves puzzle days from input/day_NN.txt files, caching answers per input.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// projectRoot returns the project root (cwd by default).
func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// setup layers CLI flags over the loaded config and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	paths = app.NewPaths(projectRoot())
	c, err := app.LoadConfig(paths)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("input-dir") {
		c.InputDir = inputDir
	}
	if flags.Changed("no-cache") {
		c.Cache = !noCache
	}
	if flags.Changed("workers") {
		c.Workers = workers
	}
	if flags.Changed("verbose") {
		c.Verbose = verbose
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	l, err := app.NewLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	logger = l
	logger.Debug("Config loaded",
		zap.String("root", paths.Project),
		zap.String("input_dir", cfg.InputDir),
		zap.Bool("cache", cfg.Cache),
		zap.Int("workers", cfg.Workers))
	return nil
}

// newRegistry registers every day with the current settings.
func newRegistry() (*puzzle.Registry, error) {
	reg := puzzle.NewRegistry()
	opts := days.Options{NewScanner: ahocorasick.Factory, Workers: cfg.Workers}
	if err := days.Register(reg, opts); err != nil {
		return nil, err
	}
	return reg, nil
}

// newRunner builds a runner over the configured input directory. The
// returned close func releases the answer cache, if one was opened.
func newRunner(reg *puzzle.Registry) (*app.Runner, func(), error) {
	opts := []app.RunnerOption{app.WithLogger(logger)}
	closeFn := func() {}

	if cfg.Cache {
		store, err := openStore()
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, app.WithStore(store))
		closeFn = func() {
			if err := store.Close(); err != nil {
				logger.Warn("Closing answer cache failed", zap.Error(err))
			}
		}
	}
	return app.NewRunner(reg, paths.Resolve(cfg.InputDir), opts...), closeFn, nil
}

func openStore() (*bbolt.Store, error) {
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("create %s: %w", paths.Root, err)
	}
	store, err := bbolt.NewStore(paths.DB)
	if err != nil {
		if isDBLockError(err) {
			return nil, fmt.Errorf("open answer cache: %w\n%s", err, diagnoseDBLock())
		}
		return nil, fmt.Errorf("open answer cache: %w", err)
	}
	return store, nil
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", colorRed, colorReset, err)
	}
	return err
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")
	pf.StringVar(&inputDir, "input-dir", "", "Directory holding day_NN.txt files (default \"input\")")
	pf.BoolVar(&noCache, "no-cache", false, "Skip the answer cache")
	pf.IntVar(&workers, "workers", 0, "Parallel obstruction searches (0 = one per CPU)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(configCmd)
}
