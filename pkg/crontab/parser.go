package crontab

import (
	"fmt"
	"strconv"

	cterrors "github.com/vnykmshr/crontab/pkg/common/errors"
	"github.com/vnykmshr/crontab/pkg/common/validation"
)

// Parse reads a five-field expression (minute, hour, day-of-month, month,
// day-of-week) from the start of input. Fields are separated by exactly one
// space. Anything after the fifth field is returned unconsumed as rest.
//
// On failure no partial Timer is returned; the error is a *ParseError.
func Parse(input string) (timer Timer, rest string, err error) {
	p := &parser{input: input}
	for i, f := range Fields {
		values, err := p.values(f)
		if err != nil {
			return Timer{}, "", err
		}
		timer.set(f, values)

		if i < len(Fields)-1 && !p.consume(' ') {
			return Timer{}, "", p.fail(f, cterrors.ErrMalformedSeparator, p.pos, nil)
		}
	}
	return timer, p.rest(), nil
}

// ParseField reads one or more comma-separated values for field f.
func ParseField(f Field, input string) (values []Value, rest string, err error) {
	if !f.Valid() {
		return nil, "", cterrors.NewValidationError(module, "field", uint8(f), "unknown field")
	}
	p := &parser{input: input}
	values, err = p.values(f)
	if err != nil {
		return nil, "", err
	}
	return values, p.rest(), nil
}

// ParseValue reads a single value for field f.
func ParseValue(f Field, input string) (value Value, rest string, err error) {
	if !f.Valid() {
		return Value{}, "", cterrors.NewValidationError(module, "field", uint8(f), "unknown field")
	}
	p := &parser{input: input}
	value, err = p.value(f)
	if err != nil {
		return Value{}, "", err
	}
	return value, p.rest(), nil
}

// parser is a single-use cursor over one input. It never backtracks across
// fields and looks ahead at most one byte.
type parser struct {
	input string
	pos   int
}

func (p *parser) rest() string { return p.input[p.pos:] }

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *parser) consume(c byte) bool {
	if b, ok := p.peek(); ok && b == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) fail(f Field, kind error, offset int, cause error) *ParseError {
	return &ParseError{
		Field:     f,
		Kind:      kind,
		Offset:    offset,
		Remaining: p.input[offset:],
		Cause:     cause,
	}
}

// values parses value (',' value)*. A comma commits to another value.
func (p *parser) values(f Field) ([]Value, error) {
	v, err := p.value(f)
	if err != nil {
		return nil, err
	}
	out := []Value{v}
	for p.consume(',') {
		if !p.atValue() {
			return nil, p.fail(f, cterrors.ErrMalformedSeparator, p.pos-1, nil)
		}
		v, err := p.value(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (p *parser) atValue() bool {
	c, ok := p.peek()
	return ok && (c == '*' || isDigit(c))
}

// value tries a range, then a wildcard with optional stride, then a bare
// number. The forms start with disjoint prefixes, so once digits are followed
// by '-' or '*' is followed by '/' the form is committed and any later
// failure fails the value.
func (p *parser) value(f Field) (Value, error) {
	start := p.pos
	c, ok := p.peek()
	switch {
	case ok && isDigit(c):
		lo, err := p.number(f)
		if err != nil {
			return Value{}, err
		}
		if !p.consume('-') {
			return Number(lo), nil
		}
		hi, err := p.number(f)
		if err != nil {
			return Value{}, err
		}
		if lo >= hi {
			p.pos = start
			return Value{}, p.fail(f, cterrors.ErrInvalidRangeOrder, start,
				cterrors.NewValidationError(module, f.String()+" range", fmt.Sprintf("%d-%d", lo, hi),
					"start must be less than end"))
		}
		return Range(lo, hi), nil

	case ok && c == '*':
		p.pos++
		if !p.consume('/') {
			return Any(), nil
		}
		// The stride shares the field's boundaries, so */23 is a valid
		// hour step and */24 is not.
		stride, err := p.number(f)
		if err != nil {
			return Value{}, err
		}
		return Step(stride), nil

	default:
		return Value{}, p.fail(f, cterrors.ErrUnparseableAtom, start, nil)
	}
}

// number consumes a run of decimal digits and checks it against the field's
// boundaries. On failure nothing is consumed.
func (p *parser) number(f Field) (uint32, error) {
	start := p.pos
	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return 0, p.fail(f, cterrors.ErrUnparseableAtom, start, nil)
	}
	digits := p.input[start:p.pos]

	b := f.Boundaries()
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		err = cterrors.NewValidationError(module, f.String(), digits,
			fmt.Sprintf("must be between %d and %d", b.Min, b.Max))
	} else {
		err = validation.ValidateInRange(module, f.String(), n, uint64(b.Min), uint64(b.Max))
	}
	if err != nil {
		p.pos = start
		return 0, p.fail(f, cterrors.ErrOutOfBounds, start, err)
	}
	return uint32(n), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
