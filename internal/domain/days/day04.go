package days

import (
	"context"
	"fmt"
)

// wordSearch is a letter grid. Lookups outside the grid return 0.
type wordSearch []string

var allDirections = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func parseWordSearch(input string) (wordSearch, error) {
	var ws wordSearch
	for _, l := range lines(input) {
		if len(ws) > 0 && len(l.text) != len(ws[0]) {
			return nil, inputErr(4, l.n, fmt.Errorf("line has %d letters, want %d", len(l.text), len(ws[0])))
		}
		ws = append(ws, l.text)
	}
	return ws, nil
}

func (ws wordSearch) at(r, c int) byte {
	if r < 0 || r >= len(ws) || c < 0 || c >= len(ws[r]) {
		return 0
	}
	return ws[r][c]
}

// spells reports whether word reads from (r, c) stepping by (dr, dc).
func (ws wordSearch) spells(word string, r, c, dr, dc int) bool {
	for i := 0; i < len(word); i++ {
		if ws.at(r+i*dr, c+i*dc) != word[i] {
			return false
		}
	}
	return true
}

func day04PartOne(_ context.Context, input string) (int64, error) {
	ws, err := parseWordSearch(input)
	if err != nil {
		return 0, err
	}
	var n int64
	for r := range ws {
		for c := 0; c < len(ws[r]); c++ {
			if ws[r][c] != 'X' {
				continue
			}
			for _, d := range allDirections {
				if ws.spells("XMAS", r, c, d[0], d[1]) {
					n++
				}
			}
		}
	}
	return n, nil
}

// isMS reports whether a and b are an M and an S in either order.
func isMS(a, b byte) bool {
	return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
}

// day04PartTwo counts X-shaped pairs of MAS crossing on their A.
func day04PartTwo(_ context.Context, input string) (int64, error) {
	ws, err := parseWordSearch(input)
	if err != nil {
		return 0, err
	}
	var n int64
	for r := range ws {
		for c := 0; c < len(ws[r]); c++ {
			if ws[r][c] != 'A' {
				continue
			}
			if isMS(ws.at(r-1, c-1), ws.at(r+1, c+1)) && isMS(ws.at(r-1, c+1), ws.at(r+1, c-1)) {
				n++
			}
		}
	}
	return n, nil
}
