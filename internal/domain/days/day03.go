package days

import (
	"context"
	"errors"
	"regexp"
	"strconv"

	"github.com/corey/advent/internal/ports"
)

var mulPattern = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)`)

// Indices into togglePatterns.
const (
	toggleDo = iota
	toggleDont
)

var togglePatterns = []string{"do()", "don't()"}

type day03 struct {
	toggles ports.TextScanner
}

func newDay03(newScanner ports.ScannerFactory) day03 {
	if newScanner == nil {
		return day03{}
	}
	return day03{toggles: newScanner(togglePatterns)}
}

// sumMuls adds up every well-formed mul(a,b) whose start offset is enabled.
func sumMuls(input string, enabled func(offset int) bool) (int64, error) {
	var total int64
	for _, m := range mulPattern.FindAllStringSubmatchIndex(input, -1) {
		if !enabled(m[0]) {
			continue
		}
		a, err := strconv.ParseInt(input[m[2]:m[3]], 10, 64)
		if err != nil {
			return 0, inputErr(3, 0, err)
		}
		b, err := strconv.ParseInt(input[m[4]:m[5]], 10, 64)
		if err != nil {
			return 0, inputErr(3, 0, err)
		}
		total += a * b
	}
	return total, nil
}

func (d day03) partOne(_ context.Context, input string) (int64, error) {
	return sumMuls(input, func(int) bool { return true })
}

// partTwo honours do() and don't(): multiplications are enabled at the start
// and each toggle applies to everything after it.
func (d day03) partTwo(_ context.Context, input string) (int64, error) {
	if d.toggles == nil {
		return 0, errors.New("day 03: no pattern scanner configured")
	}
	toggles := d.toggles.Scan([]byte(input))
	next := 0
	on := true
	return sumMuls(input, func(offset int) bool {
		for next < len(toggles) && toggles[next].Start < offset {
			on = toggles[next].PatternIndex == toggleDo
			next++
		}
		return on
	})
}
