// Package crontab parses five-field crontab schedules into a typed Timer.
//
// An expression has the fields minute, hour, day-of-month, month and
// day-of-week, separated by single spaces. Each field is a comma-separated list
// of values:
//
//	5        a number
//	1-5      an inclusive range, start strictly less than end
//	*        any value
//	*/15     a wildcard with a stride
//
// Every number, including a stride, must lie within the field's boundaries:
//
//	minute        0-59
//	hour          0-23
//	day-of-month  1-31
//	month         1-12
//	day-of-week   0-6
//
// Basic Usage:
//
//	timer, rest, err := crontab.Parse("*/7,8,30-35 * 3,*/4 * *,4 /usr/bin/backup")
//	if err != nil {
//		return err
//	}
//	fmt.Println(timer.Minutes) // [*/7 8 30-35]
//	fmt.Println(rest)          // " /usr/bin/backup"
//
// Parsing stops after the fifth field and returns the rest of the input, so the
// caller decides what may follow (a command, a comment, nothing).
//
// Lists keep their written order and duplicates. Ranges are never reordered:
// "5-3" and "4-4" are errors rather than being normalized.
//
// Strides share the field's boundaries. "*/23" is a valid hour stride because
// 23 is a valid hour, while "*/24" is rejected. "*/0" parses wherever 0 is in
// bounds; consumers that expand strides must reject it themselves (see package
// schedule).
//
// Errors:
//
// Failures are returned as *ParseError carrying the field, the byte offset and
// the remaining input. Use errors.Is with the sentinels from pkg/common/errors:
//
//	_, _, err := crontab.Parse("60 * * * *")
//	errors.Is(err, cterrors.ErrOutOfBounds) // true
//	errors.Is(err, cterrors.ErrParse)       // true
//
// Parse holds no shared state and is safe for concurrent use.
package crontab
