// advent solves Advent of Code puzzles from local input files.
// Answers are cached per input digest; `advent watch` re-solves on save.
package main

import (
	"os"

	"github.com/corey/advent/cmd/advent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
