package colorfilter

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel wrapped by every construction error.
// Test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a rejected constructor argument.
type InvalidArgumentError struct {
	// Op is the operation that failed (e.g. "NewTableFilter").
	Op string
	// Arg names the offending argument (e.g. "tableR").
	Arg string
	// Reason says what was wrong with it.
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("colorfilter: %s: %s: %s", e.Op, e.Arg, e.Reason)
}

// Unwrap returns ErrInvalidArgument.
func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func invalidArgument(op, arg, reason string) error {
	return &InvalidArgumentError{Op: op, Arg: arg, Reason: reason}
}

func missingArgument(op, arg string) error {
	return invalidArgument(op, arg, "must not be nil")
}

func lengthMismatch(op, arg string, want, got int) error {
	return invalidArgument(op, arg, fmt.Sprintf("must have a length of %d (got %d)", want, got))
}
