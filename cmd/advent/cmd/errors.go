package cmd

import (
	"errors"
	"strings"

	"github.com/corey/advent/internal/domain/grid"
	"github.com/corey/advent/internal/domain/puzzle"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitInput   = 2 // malformed or unparsable puzzle input
	exitUnknown = 3 // no solver for the requested day
)

// exitError pins an exit code on an error that would otherwise map to 1.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string { return e.err.Error() }
func (e exitError) Unwrap() error { return e.err }

func usageError(err error) error {
	return exitError{code: exitFailure, err: err}
}

// ExitCode maps an error returned by Execute to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	var parseErr *grid.ParseError
	var inputErr *puzzle.InputError
	switch {
	case errors.Is(err, puzzle.ErrUnknownDay):
		return exitUnknown
	case errors.Is(err, grid.ErrMalformedGrid),
		errors.As(err, &parseErr),
		errors.As(err, &inputErr):
		return exitInput
	}
	return exitFailure
}

// isDBLockError returns true if the error chain contains a bbolt lock timeout.
// bbolt returns the string "timeout" when it cannot acquire the file lock
// within the configured deadline.
func isDBLockError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "timeout")
}

// diagnoseDBLock explains the usual holder of the answer cache lock.
func diagnoseDBLock() string {
	return "answer cache is locked by another advent process\n" +
		"  → a running `advent watch` holds it; stop it first\n" +
		"  → or bypass the cache:  advent run --no-cache"
}
