// Package ahocorasick implements ports.TextScanner using an Aho-Corasick automaton.
// It wraps the petar-dambovaliev/aho-corasick library for O(n + m + z) matching.
package ahocorasick

import (
	"sort"

	"github.com/corey/advent/internal/ports"
	aho "github.com/petar-dambovaliev/aho-corasick"
)

// TextScanner wraps an Aho-Corasick automaton for byte-offset text scanning.
type TextScanner struct {
	automaton aho.AhoCorasick
	patterns  []string
}

// NewTextScanner builds a text scanner from the given patterns.
func NewTextScanner(patterns []string) *TextScanner {
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	p := make([]string, len(patterns))
	copy(p, patterns)
	return &TextScanner{
		automaton: builder.Build(p),
		patterns:  p,
	}
}

// Factory is a ports.ScannerFactory backed by NewTextScanner.
func Factory(patterns []string) ports.TextScanner {
	return NewTextScanner(patterns)
}

// Scan finds all pattern matches in content and returns them with byte offsets,
// ordered by start offset (ties broken by pattern index).
func (s *TextScanner) Scan(content []byte) []ports.TextMatch {
	if len(s.patterns) == 0 {
		return nil
	}
	iter := s.automaton.IterOverlappingByte(content)
	var matches []ports.TextMatch
	for next := iter.Next(); next != nil; next = iter.Next() {
		m := *next
		matches = append(matches, ports.TextMatch{
			PatternIndex: m.Pattern(),
			Start:        m.Start(),
			End:          m.End(),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		return matches[i].PatternIndex < matches[j].PatternIndex
	})
	return matches
}

// PatternCount returns the number of patterns in the automaton.
func (s *TextScanner) PatternCount() int {
	return len(s.patterns)
}

// Pattern returns the pattern string at the given index.
func (s *TextScanner) Pattern(idx int) string {
	if idx < 0 || idx >= len(s.patterns) {
		return ""
	}
	return s.patterns[idx]
}
