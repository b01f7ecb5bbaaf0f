// Package metrics provides Prometheus instrumentation for crontab components.
//
// # Overview
//
// The metrics package covers:
//   - Parsing (expressions parsed, failures by reason, parse latency)
//   - Sources (store operations, errors, entry counts)
//   - Schedules (timers compiled into robfig/cron schedules)
//
// # Quick Start
//
// Enable metrics on a named parser:
//
//	p := instrument.New("crontab_file")
//	if err := p.EnableMetrics(metrics.DefaultConfig()); err != nil {
//		return err
//	}
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	p.EnableMetrics(metrics.Config{Enabled: true, Registry: registry})
//
// # Available Metrics
//
//   - crontab_parser_parses_total{parser_name}
//   - crontab_parser_failures_total{parser_name,reason}
//   - crontab_parser_parse_duration_seconds{parser_name}
//   - crontab_source_operations_total{operation,source_name}
//   - crontab_source_errors_total{operation,source_name}
//   - crontab_source_entries{source_name}
//   - crontab_schedule_compilations_total{result}
//
// The reason label is one of out_of_bounds, invalid_range_order,
// malformed_separator, unparseable_atom or other.
package metrics
