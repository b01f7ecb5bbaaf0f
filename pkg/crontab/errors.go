package crontab

import (
	"fmt"

	cterrors "github.com/vnykmshr/crontab/pkg/common/errors"
)

const module = "crontab"

// ParseError reports where and why an expression failed to parse.
//
// errors.Is matches cterrors.ErrParse, the Kind sentinel (ErrOutOfBounds,
// ErrInvalidRangeOrder, ErrMalformedSeparator or ErrUnparseableAtom) and
// anything in the Cause chain.
type ParseError struct {
	Field     Field
	Kind      error
	Offset    int    // byte offset into the original input
	Remaining string // input from Offset onwards
	Cause     error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s: %s field: %v at offset %d", module, e.Field, e.Kind, e.Offset)
	if e.Remaining == "" {
		msg += " (end of input)"
	} else {
		msg += fmt.Sprintf(" near %q", snippet(e.Remaining))
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	errs := []error{cterrors.ErrParse, e.Kind}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func snippet(s string) string {
	const max = 16
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
