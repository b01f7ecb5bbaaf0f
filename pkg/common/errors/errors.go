package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the crontab library

var (
	// ErrParse is the root of every grammar failure
	ErrParse = errors.New("parse failed")

	// ErrOutOfBounds indicates a numeric literal outside its field's inclusive boundaries
	ErrOutOfBounds = errors.New("value out of bounds")

	// ErrInvalidRangeOrder indicates a range whose left endpoint is not strictly less than its right
	ErrInvalidRangeOrder = errors.New("range start must be less than range end")

	// ErrMalformedSeparator indicates a missing or misplaced comma or field separator
	ErrMalformedSeparator = errors.New("malformed separator")

	// ErrUnparseableAtom indicates text that matches no value form
	ErrUnparseableAtom = errors.New("unparseable value")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNotFound indicates that a stored entry does not exist
	ErrNotFound = errors.New("not found")
)

// ValidationError describes a rejected value together with the module and
// field it belongs to.
type ValidationError struct {
	Module string
	Field  string
	Value  any
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError without a hint.
func NewValidationError(module, field string, value any, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint sets a remediation hint and returns the same error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap returns ErrInvalidConfiguration.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// OperationError records which operation of which module failed and why.
type OperationError struct {
	Module    string
	Operation string
	Cause     error
	Context   string
}

// NewOperationError creates an OperationError without context.
func NewOperationError(module, operation string, cause error) *OperationError {
	return &OperationError{
		Module:    module,
		Operation: operation,
		Cause:     cause,
	}
}

// WithContext sets extra context and returns the same error for chaining.
func (e *OperationError) WithContext(context string) *OperationError {
	e.Context = context
	return e
}

func (e *OperationError) Error() string {
	msg := fmt.Sprintf("%s.%s failed: %v", e.Module, e.Operation, e.Cause)
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *OperationError) Unwrap() error {
	return e.Cause
}

// IsValidationError reports whether err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// IsParseError reports whether err is a grammar failure.
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

// Reason maps an error to a short, stable label suitable for metrics.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrOutOfBounds):
		return "out_of_bounds"
	case errors.Is(err, ErrInvalidRangeOrder):
		return "invalid_range_order"
	case errors.Is(err, ErrMalformedSeparator):
		return "malformed_separator"
	case errors.Is(err, ErrUnparseableAtom):
		return "unparseable_atom"
	default:
		return "other"
	}
}
