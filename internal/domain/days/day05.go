package days

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// pageRules holds "a|b": page a must be printed before page b.
type pageRules map[[2]int]bool

func (r pageRules) before(a, b int) bool { return r[[2]int{a, b}] }

// inOrder reports whether no later page is required before an earlier one.
func (r pageRules) inOrder(update []int) bool {
	for i := range update {
		for j := i + 1; j < len(update); j++ {
			if r.before(update[j], update[i]) {
				return false
			}
		}
	}
	return true
}

func (r pageRules) sort(update []int) {
	sort.SliceStable(update, func(i, j int) bool { return r.before(update[i], update[j]) })
}

func parsePrintQueue(input string) (pageRules, [][]int, error) {
	rules := make(pageRules)
	var updates [][]int
	inUpdates := false
	for i, text := range strings.Split(input, "\n") {
		n := i + 1
		text = strings.TrimSpace(text)
		if text == "" {
			if len(rules) > 0 {
				inUpdates = true
			}
			continue
		}
		if !inUpdates {
			a, b, ok := strings.Cut(text, "|")
			if !ok {
				return nil, nil, inputErr(5, n, fmt.Errorf("rule %q has no '|'", text))
			}
			x, err := strconv.Atoi(a)
			if err != nil {
				return nil, nil, inputErr(5, n, err)
			}
			y, err := strconv.Atoi(b)
			if err != nil {
				return nil, nil, inputErr(5, n, err)
			}
			rules[[2]int{x, y}] = true
			continue
		}
		var update []int
		for _, f := range strings.Split(text, ",") {
			p, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, nil, inputErr(5, n, err)
			}
			update = append(update, p)
		}
		updates = append(updates, update)
	}
	if len(updates) == 0 {
		return nil, nil, inputErr(5, 0, errors.New("no updates after the ordering rules"))
	}
	return rules, updates, nil
}

func middlePage(update []int) int64 {
	return int64(update[(len(update)-1)/2])
}

func day05PartOne(_ context.Context, input string) (int64, error) {
	rules, updates, err := parsePrintQueue(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, u := range updates {
		if rules.inOrder(u) {
			total += middlePage(u)
		}
	}
	return total, nil
}

func day05PartTwo(_ context.Context, input string) (int64, error) {
	rules, updates, err := parsePrintQueue(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, u := range updates {
		if rules.inOrder(u) {
			continue
		}
		rules.sort(u)
		total += middlePage(u)
	}
	return total, nil
}
