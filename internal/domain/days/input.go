package days

import (
	"strings"

	"github.com/corey/advent/internal/domain/puzzle"
	"golang.org/x/exp/constraints"
)

// numberedLine is an input line with its 1-based line number.
type numberedLine struct {
	n    int
	text string
}

// lines splits input into lines, dropping CR and blank lines.
func lines(input string) []numberedLine {
	var out []numberedLine
	for i, l := range strings.Split(input, "\n") {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, numberedLine{n: i + 1, text: l})
	}
	return out
}

func inputErr(day, line int, err error) error {
	return &puzzle.InputError{Day: day, Line: line, Err: err}
}

func absDiff[T constraints.Signed](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
