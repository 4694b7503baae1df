package hora

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the class of an engine error.
type ErrorCode string

const (
	// ErrCodeOutOfRange indicates a numeric input outside its allowed bounds.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
	// ErrCodeBadFormat indicates a timestamp string that does not match its canonical layout.
	ErrCodeBadFormat ErrorCode = "BAD_FORMAT"
	// ErrCodeNotFound indicates that no timestamp could be extracted from a text.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Error is a structured engine error. Value carries the offending input verbatim.
type Error struct {
	Code    ErrorCode
	Message string
	Value   string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %q: %v", e.Code, e.Message, e.Value, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %q", e.Code, e.Message, e.Value)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// OutOfRange creates a range error for the named field.
func OutOfRange(field string, value, lo, hi int) *Error {
	return &Error{
		Code:    ErrCodeOutOfRange,
		Message: fmt.Sprintf("%s must be in [%d,%d]", field, lo, hi),
		Value:   fmt.Sprint(value),
	}
}

// BadFormat creates a format error for a string that should follow layout.
func BadFormat(value, layout string, cause error) *Error {
	return &Error{
		Code:    ErrCodeBadFormat,
		Message: "expected layout " + layout,
		Value:   value,
		Cause:   cause,
	}
}

// NotFound creates a not-found error carrying the scanned text.
func NotFound(text string) *Error {
	return &Error{Code: ErrCodeNotFound, Message: "no timestamp in text", Value: text}
}

// IsCode reports whether err, or any error it wraps, is an *Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
