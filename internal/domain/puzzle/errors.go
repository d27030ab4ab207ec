package puzzle

import "fmt"

// InputError reports a puzzle input line a solver could not understand.
// Line is 1-based; 0 means the input as a whole.
type InputError struct {
	Day  int
	Line int
	Err  error
}

func (e *InputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("day %02d input line %d: %v", e.Day, e.Line, e.Err)
	}
	return fmt.Sprintf("day %02d input: %v", e.Day, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }
