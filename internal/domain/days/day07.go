package days

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type operator func(a, b int64) int64

func add(a, b int64) int64 { return a + b }

func multiply(a, b int64) int64 { return a * b }

// concat joins the decimal digits of a and b: concat(12, 345) == 12345.
func concat(a, b int64) int64 {
	shift := int64(10)
	for shift <= b {
		shift *= 10
	}
	return a*shift + b
}

type equation struct {
	target int64
	nums   []int64
}

func parseEquations(input string) ([]equation, error) {
	var eqs []equation
	for _, l := range lines(input) {
		head, tail, ok := strings.Cut(l.text, ":")
		if !ok {
			return nil, inputErr(7, l.n, fmt.Errorf("no ':' in %q", l.text))
		}
		target, err := strconv.ParseInt(strings.TrimSpace(head), 10, 64)
		if err != nil {
			return nil, inputErr(7, l.n, err)
		}
		fields := strings.Fields(tail)
		if len(fields) == 0 {
			return nil, inputErr(7, l.n, errors.New("no operands"))
		}
		eq := equation{target: target, nums: make([]int64, 0, len(fields))}
		for _, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, inputErr(7, l.n, err)
			}
			if v < 0 {
				return nil, inputErr(7, l.n, fmt.Errorf("negative operand %d", v))
			}
			eq.nums = append(eq.nums, v)
		}
		eqs = append(eqs, eq)
	}
	return eqs, nil
}

// solvable searches operator choices depth-first, evaluating strictly left
// to right. Operands are non-negative, so a running total above the target
// can never come back down and that branch is dropped.
func (eq equation) solvable(ops []operator) bool {
	type frame struct {
		depth int
		total int64
	}
	stack := []frame{{depth: 0, total: eq.nums[0]}}
	last := len(eq.nums) - 1
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.total > eq.target {
			continue
		}
		if f.depth == last {
			if f.total == eq.target {
				return true
			}
			continue
		}
		next := eq.nums[f.depth+1]
		for _, op := range ops {
			stack = append(stack, frame{depth: f.depth + 1, total: op(f.total, next)})
		}
	}
	return false
}

func calibrate(input string, ops []operator) (int64, error) {
	eqs, err := parseEquations(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, eq := range eqs {
		if eq.solvable(ops) {
			total += eq.target
		}
	}
	return total, nil
}

func day07PartOne(_ context.Context, input string) (int64, error) {
	return calibrate(input, []operator{add, multiply})
}

func day07PartTwo(_ context.Context, input string) (int64, error) {
	return calibrate(input, []operator{add, multiply, concat})
}
