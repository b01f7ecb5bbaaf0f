package schedule

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/robfig/cron/v3"

	"github.com/vnykmshr/crontab/internal/testutil"
	cterrors "github.com/vnykmshr/crontab/pkg/common/errors"
	"github.com/vnykmshr/crontab/pkg/crontab"
	"github.com/vnykmshr/crontab/pkg/metrics"
)

// Expressions accepted by both parsers must compile to identical bitmasks.
func TestCompile_MatchesRobfigParser(t *testing.T) {
	exprs := []string{
		"* * * * *",
		"*/7,8,30-35 * 3,*/4 * *,4",
		"0 9 * * 1-5",
		"30 14 1,15 * *",
		"0 0 1 1 0",
		"*/1 */1 */1 */1 */1",
		"*/15 0-6,18-23 * 1-6,9-12 *",
		"59 23 31 12 6",
	}

	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			timer, rest, err := crontab.Parse(expr)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, rest, "")

			got, err := Compile(timer)
			testutil.AssertNoError(t, err)

			want, err := cron.ParseStandard(expr)
			testutil.AssertNoError(t, err)
			testutil.AssertDeepEqual(t, got, want)
		})
	}
}

func TestCompile_Next(t *testing.T) {
	timer, _, err := crontab.Parse("30 9 * * 1-5")
	testutil.AssertNoError(t, err)

	s, err := Compile(timer)
	testutil.AssertNoError(t, err)

	// Saturday 2024-06-01 10:00 UTC.
	from := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	got := NextN(s, from, 3)
	want := []time.Time{
		time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC),
		time.Date(2024, 6, 4, 9, 30, 0, 0, time.UTC),
		time.Date(2024, 6, 5, 9, 30, 0, 0, time.UTC),
	}
	testutil.AssertDeepEqual(t, got, want)
}

func TestCompile_DayOfMonthOrDayOfWeek(t *testing.T) {
	// Neither field is a bare wildcard, so either may match.
	s, _, err := Parse("0 0 13 * 5")
	testutil.AssertNoError(t, err)

	from := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	got := NextN(s, from, 3)
	want := []time.Time{
		time.Date(2024, 9, 6, 0, 0, 0, 0, time.UTC),  // Friday
		time.Date(2024, 9, 13, 0, 0, 0, 0, time.UTC), // 13th, also Friday
		time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC), // Friday
	}
	testutil.AssertDeepEqual(t, got, want)
}

func TestCompile_ZeroStride(t *testing.T) {
	timer, _, err := crontab.Parse("*/0 * * * *")
	testutil.AssertNoError(t, err)

	_, err = Compile(timer)
	testutil.AssertError(t, err)
	if !cterrors.IsValidationError(err) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestCompile_EmptyField(t *testing.T) {
	_, err := Compile(crontab.Timer{})
	testutil.AssertErrorIs(t, err, cterrors.ErrInvalidConfiguration)
}

func TestCompile_InvalidValue(t *testing.T) {
	timer, _, err := crontab.Parse("* * * * *")
	testutil.AssertNoError(t, err)
	timer.Hours = []crontab.Value{{}}

	_, err = Compile(timer)
	testutil.AssertErrorIs(t, err, cterrors.ErrInvalidConfiguration)
}

func TestCompile_OutOfBounds(t *testing.T) {
	tests := []struct {
		name  string
		field crontab.Field
		value crontab.Value
	}{
		{"minute above max", crontab.Minute, crontab.Number(60)},
		{"star bit position", crontab.DayOfMonth, crontab.Number(63)},
		{"beyond mask width", crontab.Hour, crontab.Number(64)},
		{"below min", crontab.Month, crontab.Number(0)},
		{"range end", crontab.DayOfWeek, crontab.Range(1, 7)},
		{"range start", crontab.DayOfMonth, crontab.Range(0, 5)},
		{"reversed range", crontab.Hour, crontab.Range(5, 3)},
		{"degenerate range", crontab.Hour, crontab.Range(4, 4)},
		{"stride", crontab.Hour, crontab.Step(24)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer, _, err := crontab.Parse("* * * * *")
			testutil.AssertNoError(t, err)
			switch tt.field {
			case crontab.Minute:
				timer.Minutes = []crontab.Value{tt.value}
			case crontab.Hour:
				timer.Hours = []crontab.Value{tt.value}
			case crontab.DayOfMonth:
				timer.Days = []crontab.Value{crontab.Number(1), tt.value}
			case crontab.Month:
				timer.Months = []crontab.Value{tt.value}
			case crontab.DayOfWeek:
				timer.DaysOfWeek = []crontab.Value{tt.value}
			}

			spec, err := Compile(timer)
			testutil.AssertErrorIs(t, err, cterrors.ErrInvalidConfiguration)
			if spec != nil {
				t.Errorf("expected no schedule, got %+v", spec)
			}
		})
	}
}

func TestParse(t *testing.T) {
	s, rest, err := Parse("0 12 * * * /bin/true")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rest, " /bin/true")

	from := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	testutil.AssertEqual(t, s.Next(from), time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC))

	_, rest, err = Parse("0 12 * *")
	testutil.AssertErrorIs(t, err, cterrors.ErrParse)
	testutil.AssertEqual(t, rest, "")
}

func TestNextN_StopsOnZero(t *testing.T) {
	// February 30th never happens; robfig gives up and returns the zero time.
	s, _, err := Parse("0 0 30 2 *")
	testutil.AssertNoError(t, err)

	got := NextN(s, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 2)
	testutil.AssertEqual(t, len(got), 0)
}

func TestNextN_NonPositiveCount(t *testing.T) {
	s, _, err := Parse("* * * * *")
	testutil.AssertNoError(t, err)

	for _, n := range []int{0, -1, -100} {
		if got := NextN(s, time.Now(), n); got != nil {
			t.Errorf("NextN(%d) = %v, want nil", n, got)
		}
	}
}

func TestCompiler_RecordsMetrics(t *testing.T) {
	registry := metrics.NewRegistry(prometheus.NewRegistry())
	c := NewCompiler(registry)

	ok, _, _ := crontab.Parse("* * * * *")
	bad, _, _ := crontab.Parse("*/0 * * * *")

	_, err := c.Compile(ok)
	testutil.AssertNoError(t, err)
	_, err = c.Compile(bad)
	testutil.AssertError(t, err)

	testutil.AssertEqual(t, promtest.ToFloat64(registry.ScheduleCompilations.WithLabelValues("ok")), 1.0)
	testutil.AssertEqual(t, promtest.ToFloat64(registry.ScheduleCompilations.WithLabelValues("error")), 1.0)
}
