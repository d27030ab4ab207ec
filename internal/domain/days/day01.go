package days

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

func parseLocationLists(input string) (left, right []int64, err error) {
	for _, l := range lines(input) {
		fields := strings.Fields(l.text)
		if len(fields) != 2 {
			return nil, nil, inputErr(1, l.n, fmt.Errorf("want 2 columns, have %d", len(fields)))
		}
		a, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, nil, inputErr(1, l.n, err)
		}
		b, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, nil, inputErr(1, l.n, err)
		}
		left = append(left, a)
		right = append(right, b)
	}
	return left, right, nil
}

// day01PartOne pairs the smallest with the smallest and so on, summing the
// distances.
func day01PartOne(_ context.Context, input string) (int64, error) {
	left, right, err := parseLocationLists(input)
	if err != nil {
		return 0, err
	}
	sort.Slice(left, func(i, j int) bool { return left[i] < left[j] })
	sort.Slice(right, func(i, j int) bool { return right[i] < right[j] })

	var total int64
	for i := range left {
		total += absDiff(left[i], right[i])
	}
	return total, nil
}

// day01PartTwo is the similarity score: each left number times its
// frequency in the right list.
func day01PartTwo(_ context.Context, input string) (int64, error) {
	left, right, err := parseLocationLists(input)
	if err != nil {
		return 0, err
	}
	freq := make(map[int64]int64, len(right))
	for _, r := range right {
		freq[r]++
	}
	var total int64
	for _, l := range left {
		total += l * freq[l]
	}
	return total, nil
}
