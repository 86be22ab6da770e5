// Package apperr defines the error type used for user-facing failures.
package apperr

import "fmt"

// Error is a sentinel error whose message may contain formatting verbs that
// are filled in at the point of use with Fmt.
type Error struct {
	Cause   error
	Message string
	base    *Error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is this error or the sentinel a formatted copy
// was derived from, so errors.Is keeps matching after Fmt.
func (e *Error) Is(target error) bool {
	if e == target {
		return true
	}

	return e.base != nil && error(e.base) == target
}

// Fmt returns a copy of the error with its message formatting verbs
// substituted.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		base:    e,
	}
}

// Wrap returns a copy of the error with an underlying cause attached.
func (e *Error) Wrap(cause error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   cause,
		base:    e,
	}
}
