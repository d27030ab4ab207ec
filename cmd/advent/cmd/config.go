package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows resolved paths and settings after config file, .env, environment and flags are applied.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cache := fmt.Sprintf("%s✗ disabled%s", colorYellow, colorReset)
	if cfg.Cache {
		cache = fmt.Sprintf("%s✓ enabled%s", colorGreen, colorReset)
	}
	workerDesc := fmt.Sprintf("%d", cfg.Workers)
	if cfg.Workers == 0 {
		workerDesc = fmt.Sprintf("auto (%d)", runtime.NumCPU())
	}

	fmt.Fprintf(out, "%s⚡ advent config%s\n", colorBold, colorReset)
	fmt.Fprintf(out, "  Root:       %s\n", paths.Project)
	fmt.Fprintf(out, "  Input:      %s\n", paths.Resolve(cfg.InputDir))
	fmt.Fprintf(out, "  Config:     %s%s\n", paths.Config, presence(paths.Config))
	fmt.Fprintf(out, "  Env file:   %s%s\n", paths.Env, presence(paths.Env))
	fmt.Fprintf(out, "  Cache DB:   %s\n", paths.DB)
	fmt.Fprintf(out, "  Cache:      %s\n", cache)
	fmt.Fprintf(out, "  Workers:    %s\n", workerDesc)
	fmt.Fprintf(out, "  Verbose:    %t\n", cfg.Verbose)
	return nil
}

func presence(path string) string {
	if _, err := os.Stat(path); err != nil {
		return fmt.Sprintf(" %s(absent)%s", colorGray, colorReset)
	}
	return ""
}
