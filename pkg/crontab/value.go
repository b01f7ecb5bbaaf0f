package crontab

import (
	"strconv"
	"strings"
)

// Kind tells which form a Value takes.
type Kind uint8

const (
	// KindNumber is a single value, e.g. "5".
	KindNumber Kind = iota + 1
	// KindRange is an inclusive range with start < end, e.g. "1-5".
	KindRange
	// KindStep is a wildcard with a stride, e.g. "*/15".
	KindStep
	// KindAny is a bare wildcard, "*".
	KindAny
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindRange:
		return "range"
	case KindStep:
		return "step"
	case KindAny:
		return "any"
	default:
		return "invalid"
	}
}

// Value is one comma-separated atom of a field. Values are comparable with ==.
type Value struct {
	kind Kind
	lo   uint32
	hi   uint32
}

// Number returns a single-value atom.
func Number(n uint32) Value { return Value{kind: KindNumber, lo: n} }

// Range returns an inclusive range atom. The parser only produces ranges with
// lo < hi.
func Range(lo, hi uint32) Value { return Value{kind: KindRange, lo: lo, hi: hi} }

// Step returns a stepped wildcard atom.
func Step(stride uint32) Value { return Value{kind: KindStep, lo: stride} }

// Any returns the bare wildcard atom.
func Any() Value { return Value{kind: KindAny} }

// Kind returns the form of v.
func (v Value) Kind() Kind { return v.kind }

// Number returns the value of a KindNumber atom.
func (v Value) Number() uint32 { return v.lo }

// Range returns the endpoints of a KindRange atom.
func (v Value) Range() (lo, hi uint32) { return v.lo, v.hi }

// Stride returns the stride of a KindStep atom.
func (v Value) Stride() uint32 { return v.lo }

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatUint(uint64(v.lo), 10)
	case KindRange:
		return strconv.FormatUint(uint64(v.lo), 10) + "-" + strconv.FormatUint(uint64(v.hi), 10)
	case KindStep:
		return "*/" + strconv.FormatUint(uint64(v.lo), 10)
	case KindAny:
		return "*"
	default:
		return "<invalid>"
	}
}

// MarshalText renders v in crontab notation so that JSON and YAML encoders
// print atoms as they were written.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Timer is a fully parsed five-field expression. Each list keeps the order
// and duplicates of the source text.
type Timer struct {
	Minutes    []Value `json:"minutes" yaml:"minutes"`
	Hours      []Value `json:"hours" yaml:"hours"`
	Days       []Value `json:"days" yaml:"days"`
	Months     []Value `json:"months" yaml:"months"`
	DaysOfWeek []Value `json:"days_of_week" yaml:"days_of_week"`
}

// Field returns the values parsed for f, or nil for an invalid field.
func (t Timer) Field(f Field) []Value {
	switch f {
	case Minute:
		return t.Minutes
	case Hour:
		return t.Hours
	case DayOfMonth:
		return t.Days
	case Month:
		return t.Months
	case DayOfWeek:
		return t.DaysOfWeek
	default:
		return nil
	}
}

func (t *Timer) set(f Field, values []Value) {
	switch f {
	case Minute:
		t.Minutes = values
	case Hour:
		t.Hours = values
	case DayOfMonth:
		t.Days = values
	case Month:
		t.Months = values
	case DayOfWeek:
		t.DaysOfWeek = values
	}
}

// String renders t in crontab notation.
func (t Timer) String() string {
	var sb strings.Builder
	for i, f := range Fields {
		if i > 0 {
			sb.WriteByte(' ')
		}
		for j, v := range t.Field(f) {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(v.String())
		}
	}
	return sb.String()
}
