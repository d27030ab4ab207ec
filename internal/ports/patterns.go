package ports

// TextScanner finds every occurrence of a fixed pattern set in one pass
// (Aho-Corasick). Matches are reported with byte offsets so callers can
// interleave them with other scans of the same text.
type TextScanner interface {
	// Scan returns all matches in content ordered by start offset, then by
	// pattern index.
	// Overlapping matches are all reported.
	Scan(content []byte) []TextMatch
}

// ScannerFactory compiles a TextScanner for a pattern set.
type ScannerFactory func(patterns []string) TextScanner

// TextMatch is one pattern occurrence.
type TextMatch struct {
	PatternIndex int // index into the patterns the scanner was built from
	Start        int // byte offset start (inclusive)
	End          int // byte offset end (exclusive)
}
