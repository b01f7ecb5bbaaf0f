// Package schedule turns parsed crontab timers into robfig/cron schedules.
//
// The crontab package only describes when a job may fire; this package hands
// that description to github.com/robfig/cron/v3, which computes fire times.
package schedule

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	cterrors "github.com/vnykmshr/crontab/pkg/common/errors"
	"github.com/vnykmshr/crontab/pkg/crontab"
	"github.com/vnykmshr/crontab/pkg/metrics"
)

// starBit marks a field written as a bare wildcard. It matches the bit
// robfig/cron reserves for the same purpose, which switches day-of-month and
// day-of-week matching from OR to AND.
const starBit = 1 << 63

// Compiler converts timers into schedules and optionally records metrics.
type Compiler struct {
	registry *metrics.Registry
}

// NewCompiler returns a Compiler. A nil registry disables metrics.
func NewCompiler(registry *metrics.Registry) *Compiler {
	return &Compiler{registry: registry}
}

// Compile converts t into a robfig/cron SpecSchedule that fires at second 0
// of every matching minute, evaluated in the location of the time passed to
// Next.
func Compile(t crontab.Timer) (*cron.SpecSchedule, error) {
	return NewCompiler(nil).Compile(t)
}

// Compile converts t into a robfig/cron SpecSchedule.
func (c *Compiler) Compile(t crontab.Timer) (*cron.SpecSchedule, error) {
	spec := &cron.SpecSchedule{
		Second:   1 << 0,
		Location: time.Local,
	}
	targets := [...]*uint64{&spec.Minute, &spec.Hour, &spec.Dom, &spec.Month, &spec.Dow}

	for _, f := range crontab.Fields {
		bits, err := fieldBits(f, t.Field(f))
		if err != nil {
			c.record("error")
			return nil, err
		}
		*targets[f] = bits
	}
	c.record("ok")
	return spec, nil
}

func (c *Compiler) record(result string) {
	if c.registry != nil {
		c.registry.ScheduleCompilations.WithLabelValues(result).Inc()
	}
}

func fieldBits(f crontab.Field, values []crontab.Value) (uint64, error) {
	if len(values) == 0 {
		return 0, cterrors.NewValidationError("schedule", f.String(), "", "needs at least one value")
	}

	b := f.Boundaries()
	var bits uint64
	for _, v := range values {
		switch v.Kind() {
		case crontab.KindNumber:
			if !b.Contains(v.Number()) {
				return 0, outOfBounds(f, v, b)
			}
			bits |= 1 << v.Number()
		case crontab.KindRange:
			lo, hi := v.Range()
			if !b.Contains(lo) || !b.Contains(hi) {
				return 0, outOfBounds(f, v, b)
			}
			if lo >= hi {
				return 0, cterrors.NewValidationError("schedule", f.String()+" range", v.String(),
					"start must be less than end")
			}
			bits |= span(lo, hi, 1)
		case crontab.KindAny:
			bits |= span(b.Min, b.Max, 1) | starBit
		case crontab.KindStep:
			stride := v.Stride()
			if stride == 0 {
				return 0, cterrors.NewValidationError("schedule", f.String()+" step", v.String(), "must be positive").
					WithHint("use */1 or * to match every value")
			}
			if !b.Contains(stride) {
				return 0, outOfBounds(f, v, b)
			}
			bits |= span(b.Min, b.Max, stride)
			if stride == 1 {
				bits |= starBit
			}
		default:
			return 0, cterrors.NewValidationError("schedule", f.String(), v.String(), "unknown value kind")
		}
	}
	return bits, nil
}

func outOfBounds(f crontab.Field, v crontab.Value, b crontab.Boundaries) error {
	return cterrors.NewValidationError("schedule", f.String(), v.String(),
		fmt.Sprintf("must be between %d and %d", b.Min, b.Max))
}

// span sets every step-th bit from lo to hi inclusive.
func span(lo, hi, step uint32) uint64 {
	var bits uint64
	for i := lo; i <= hi; i += step {
		bits |= 1 << i
	}
	return bits
}

// Parse parses the five-field expression at the start of line and compiles
// it. The unconsumed rest of line is returned as with crontab.Parse.
func Parse(line string) (cron.Schedule, string, error) {
	timer, rest, err := crontab.Parse(line)
	if err != nil {
		return nil, "", err
	}
	spec, err := Compile(timer)
	if err != nil {
		return nil, "", err
	}
	return spec, rest, nil
}

// NextN returns the next n fire times of s strictly after from. It stops
// early if s reports no further time. A non-positive n yields nil.
func NextN(s cron.Schedule, from time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	times := make([]time.Time, 0, n)
	t := from
	for len(times) < n {
		t = s.Next(t)
		if t.IsZero() {
			break
		}
		times = append(times, t)
	}
	return times
}
