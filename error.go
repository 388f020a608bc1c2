package crontime

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind represents the type of error that occurred.
type ErrorKind string

const (
	ErrorKindInvalidClause ErrorKind = "invalid_clause"
	ErrorKindOutOfRange    ErrorKind = "out_of_range"
	ErrorKindInvalidTime   ErrorKind = "invalid_time"
	ErrorKindInvalidSpec   ErrorKind = "invalid_spec"
)

// Sentinel errors for use with errors.Is. Every *Error matches the sentinel
// of its Kind.
var (
	ErrInvalidClause = errors.New("invalid clause")
	ErrOutOfRange    = errors.New("value out of range")
	ErrInvalidTime   = errors.New("invalid time for comparison")
	ErrInvalidSpec   = errors.New("invalid field spec")
)

// Span represents a range of byte positions in the input.
type Span struct {
	Start int
	End   int
}

// Error represents an error that occurred while parsing an expression or
// evaluating a query against it.
type Error struct {
	Kind    ErrorKind
	Message string
	// Field is the display name of the field involved, if any.
	Field string
	// Clause is the offending clause text for ErrorKindInvalidClause.
	Clause string
	Span   *Span
	// Input is the field text the span refers to, after name resolution.
	Input string
	// Value is the rejected query value for ErrorKindOutOfRange.
	Value int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is the sentinel error for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidClause:
		return e.Kind == ErrorKindInvalidClause
	case ErrOutOfRange:
		return e.Kind == ErrorKindOutOfRange
	case ErrInvalidTime:
		return e.Kind == ErrorKindInvalidTime
	case ErrInvalidSpec:
		return e.Kind == ErrorKindInvalidSpec
	}
	return false
}

// ClauseError creates a new invalid clause error.
func ClauseError(field, clause string, span Span, input string) *Error {
	return &Error{
		Kind:    ErrorKindInvalidClause,
		Message: fmt.Sprintf("illegal clause %q for %s field", clause, field),
		Field:   field,
		Clause:  clause,
		Span:    &span,
		Input:   input,
	}
}

// RangeError creates a new out of range error.
func RangeError(field string, value, min, max int) *Error {
	return &Error{
		Kind:    ErrorKindOutOfRange,
		Message: fmt.Sprintf("%d out of range (%d..%d) for %s field", value, min, max, field),
		Field:   field,
		Value:   value,
	}
}

// TimeError creates a new invalid time error.
func TimeError(message string) *Error {
	return &Error{
		Kind:    ErrorKindInvalidTime,
		Message: message,
	}
}

// SpecError creates a new invalid field spec error.
func SpecError(message string) *Error {
	return &Error{
		Kind:    ErrorKindInvalidSpec,
		Message: message,
	}
}

// DisplayRich formats a rich error message with the offending clause
// underlined.
func (e *Error) DisplayRich() string {
	if e.Kind == ErrorKindInvalidClause && e.Span != nil {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("error: %s\n", e.Message))
		sb.WriteString(fmt.Sprintf("  %s\n", e.Input))

		padding := strings.Repeat(" ", e.Span.Start+2)
		underlineLen := e.Span.End - e.Span.Start
		if underlineLen < 1 {
			underlineLen = 1
		}
		sb.WriteString(padding)
		sb.WriteString(strings.Repeat("^", underlineLen))

		return sb.String()
	}

	return fmt.Sprintf("error: %s", e.Message)
}
