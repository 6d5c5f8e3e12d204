// Package parse holds the error type shared by the puzzle input parsers.
package parse

import (
	"errors"
	"fmt"
)

// ErrMalformed is wrapped by every *Error so callers can test for any parse
// failure with errors.Is.
var ErrMalformed = errors.New("malformed input")

// Error describes a parse failure at a specific input position.
type Error struct {
	// Line is 1-based. Column is 1-based, 0 when not applicable.
	Line   int
	Column int
	Msg    string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	pos := fmt.Sprintf("line %d", e.Line)
	if e.Column > 0 {
		pos = fmt.Sprintf("line %d, column %d", e.Line, e.Column)
	}
	if e.Err != nil {
		return fmt.Sprintf("could not parse %s: %s: %v", pos, e.Msg, e.Err)
	}
	return fmt.Sprintf("could not parse %s: %s", pos, e.Msg)
}

// Unwrap exposes both ErrMalformed and the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformed, e.Err}
	}
	return []error{ErrMalformed}
}

// Errorf builds an *Error for line with a formatted message.
func Errorf(line int, format string, args ...any) *Error {
	return &Error{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error for line that wraps cause.
func Wrap(line int, cause error, format string, args ...any) *Error {
	return &Error{Line: line, Msg: fmt.Sprintf(format, args...), Err: cause}
}
