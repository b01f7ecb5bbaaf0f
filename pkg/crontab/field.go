package crontab

// Field identifies one of the five positions of a crontab expression.
type Field uint8

// Fields in the order they appear in an expression.
const (
	Minute Field = iota
	Hour
	DayOfMonth
	Month
	DayOfWeek
)

// Fields lists every field in expression order.
var Fields = [...]Field{Minute, Hour, DayOfMonth, Month, DayOfWeek}

// Boundaries holds the inclusive numeric limits of a field.
type Boundaries struct {
	Min uint32
	Max uint32
}

// Contains reports whether n lies within the boundaries.
func (b Boundaries) Contains(n uint32) bool {
	return n >= b.Min && n <= b.Max
}

var fieldBoundaries = [...]Boundaries{
	Minute:     {0, 59},
	Hour:       {0, 23},
	DayOfMonth: {1, 31},
	Month:      {1, 12},
	DayOfWeek:  {0, 6},
}

var fieldNames = [...]string{
	Minute:     "minute",
	Hour:       "hour",
	DayOfMonth: "day-of-month",
	Month:      "month",
	DayOfWeek:  "day-of-week",
}

// Valid reports whether f is one of the five known fields.
func (f Field) Valid() bool {
	return int(f) < len(fieldBoundaries)
}

// Boundaries returns the inclusive limits for f. An invalid field yields the
// zero Boundaries.
func (f Field) Boundaries() Boundaries {
	if !f.Valid() {
		return Boundaries{}
	}
	return fieldBoundaries[f]
}

func (f Field) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return fieldNames[f]
}
