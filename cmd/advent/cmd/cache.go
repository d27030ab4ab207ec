package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	cacheDay   int
	cacheForce bool
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the answer cache",
	Long: `Answers are cached per day, part, solver revision and input digest.
Editing an input or bumping a day's solver revision re-solves it.`,
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached answers",
	Args:  cobra.NoArgs,
	RunE:  runCacheList,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete cached answers",
	Long:  "Deletes every cached answer, or only those of one day with --day.",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

func init() {
	cacheClearCmd.Flags().IntVar(&cacheDay, "day", -1, "Only clear this day")
	cacheClearCmd.Flags().BoolVar(&cacheForce, "force", false, "Skip confirmation prompt")
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

func runCacheList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if _, err := os.Stat(paths.DB); os.IsNotExist(err) {
		fmt.Fprintln(out, "⚡ cache is empty")
		return nil
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.ListAnswers()
	if err != nil {
		return err
	}
	fmt.Fprint(out, formatCacheList(recs))
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if _, err := os.Stat(paths.DB); os.IsNotExist(err) {
		fmt.Fprintln(out, "⚡ no cached answers")
		return nil
	}

	what := "all cached answers"
	if cacheDay >= 0 {
		what = fmt.Sprintf("cached answers for day %02d", cacheDay)
	}
	if !cacheForce {
		fmt.Fprintf(out, "⚠ This will delete %s. Continue? [y/N] ", what)
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(out, "cancelled")
			return nil
		}
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if cacheDay >= 0 {
		err = store.DeleteDay(cacheDay)
	} else {
		err = store.Clear()
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "⚡ deleted %s\n", what)
	return nil
}
