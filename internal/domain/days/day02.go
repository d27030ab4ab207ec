package days

import (
	"context"
	"strconv"
	"strings"
)

func parseReports(input string) ([][]int, error) {
	var reports [][]int
	for _, l := range lines(input) {
		fields := strings.Fields(l.text)
		report := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, inputErr(2, l.n, err)
			}
			report = append(report, v)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// isSafe reports whether levels are strictly monotonic with adjacent steps of
// 1 to 3.
func isSafe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	increasing := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		if (levels[i] > levels[i-1]) != increasing {
			return false
		}
		if d := absDiff(levels[i], levels[i-1]); d < 1 || d > 3 {
			return false
		}
	}
	return true
}

// isSafeDampened tolerates removing a single bad level.
func isSafeDampened(levels []int) bool {
	if isSafe(levels) {
		return true
	}
	buf := make([]int, 0, len(levels))
	for skip := range levels {
		buf = buf[:0]
		buf = append(buf, levels[:skip]...)
		buf = append(buf, levels[skip+1:]...)
		if isSafe(buf) {
			return true
		}
	}
	return false
}

func countReports(input string, safe func([]int) bool) (int64, error) {
	reports, err := parseReports(input)
	if err != nil {
		return 0, err
	}
	var n int64
	for _, r := range reports {
		if safe(r) {
			n++
		}
	}
	return n, nil
}

func day02PartOne(_ context.Context, input string) (int64, error) {
	return countReports(input, isSafe)
}

func day02PartTwo(_ context.Context, input string) (int64, error) {
	return countReports(input, isSafeDampened)
}
