// Package days holds one solver pair per puzzle day.
//
// Every solver takes the raw input text and returns an integer answer.
// Input problems are reported as *puzzle.InputError; days that delegate to
// another domain package (day 6 and the grid simulator) pass that package's
// errors through wrapped.
package days

import (
	"fmt"
	"runtime"

	"github.com/corey/advent/internal/domain/puzzle"
	"github.com/corey/advent/internal/ports"
)

// Options carries the few collaborators some days need.
type Options struct {
	// NewScanner compiles multi-pattern scanners (day 3).
	NewScanner ports.ScannerFactory

	// Workers bounds the parallel obstruction search (day 6).
	// Zero means runtime.NumCPU().
	Workers int
}

// All returns every day, in order.
func All(opts Options) []puzzle.Day {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	d3 := newDay03(opts.NewScanner)
	d6 := day06{workers: opts.Workers}
	return []puzzle.Day{
		{Number: 0, Title: "Scaffold", PartOne: day00PartOne, PartTwo: day00PartTwo},
		{Number: 1, Title: "Historian Hysteria", PartOne: day01PartOne, PartTwo: day01PartTwo},
		{Number: 2, Title: "Red-Nosed Reports", PartOne: day02PartOne, PartTwo: day02PartTwo},
		{Number: 3, Title: "Mull It Over", PartOne: d3.partOne, PartTwo: d3.partTwo},
		{Number: 4, Title: "Ceres Search", PartOne: day04PartOne, PartTwo: day04PartTwo},
		{Number: 5, Title: "Print Queue", PartOne: day05PartOne, PartTwo: day05PartTwo},
		{Number: 6, Title: "Guard Gallivant", PartOne: d6.partOne, PartTwo: d6.partTwo},
		{Number: 7, Title: "Bridge Repair", PartOne: day07PartOne, PartTwo: day07PartTwo},
	}
}

// Register adds every day to r.
func Register(r *puzzle.Registry, opts Options) error {
	for _, d := range All(opts) {
		if err := r.Register(d); err != nil {
			return fmt.Errorf("register days: %w", err)
		}
	}
	return nil
}
