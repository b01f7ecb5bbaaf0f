// Package crontab is the root of a Go library for parsing five-field crontab
// schedule expressions into typed values.
//
// Parsing (pkg/crontab):
//   - Parse: minute, hour, day-of-month, month and day-of-week fields
//   - ParseField, ParseValue: single fields and single values
//   - ParseError: field, failure kind and byte offset of every rejection
//
// Scheduling (pkg/schedule):
//   - Compile: converts a parsed Timer into a robfig/cron schedule
//   - NextN: upcoming fire times
//
// Sources (pkg/source):
//   - ReadAll: crontab files with comments and blank lines
//   - RedisStore: named lines kept in a Redis hash
//
// Observability (pkg/metrics, pkg/instrument):
//   - Prometheus counters and histograms for parses, sources and compilation
//
// Example usage:
//
//	import (
//		"github.com/vnykmshr/crontab/pkg/crontab"
//		"github.com/vnykmshr/crontab/pkg/schedule"
//	)
//
//	timer, command, err := crontab.Parse("*/15 9-17 * * 1-5 /usr/bin/poll")
//	if err != nil {
//		log.Fatal(err)
//	}
//	spec, _ := schedule.Compile(timer)
//	fmt.Println(spec.Next(time.Now()), command)
//
// The cmd/crontab binary exposes the same operations on the command line.
package crontab
