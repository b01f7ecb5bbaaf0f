// Package metrics provides Prometheus instrumentation for crontab components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace prefixes every metric name unless Config.Namespace overrides it.
const DefaultNamespace = "crontab"

// Registry holds all metric instances for crontab components.
type Registry struct {
	// Parser Metrics
	Parses        *prometheus.CounterVec
	ParseFailures *prometheus.CounterVec
	ParseDuration *prometheus.HistogramVec

	// Source Metrics
	SourceOperations *prometheus.CounterVec
	SourceErrors     *prometheus.CounterVec
	SourceEntries    *prometheus.GaugeVec

	// Schedule Metrics
	ScheduleCompilations *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by crontab components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return NewRegistryWithConfig(Config{Registry: reg})
}

// NewRegistryWithConfig creates a registry honoring the namespace and constant
// labels of config. A nil config.Registry registers with
// prometheus.DefaultRegisterer.
func NewRegistryWithConfig(config Config) *Registry {
	reg := config.Registry
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	ns := config.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	labels := config.Labels
	factory := promauto.With(reg)

	return &Registry{
		// Parser Metrics
		Parses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "parser",
				Name:        "parses_total",
				Help:        "Total number of expressions parsed",
				ConstLabels: labels,
			},
			[]string{"parser_name"},
		),

		ParseFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "parser",
				Name:        "failures_total",
				Help:        "Total number of expressions rejected by the parser",
				ConstLabels: labels,
			},
			[]string{"parser_name", "reason"},
		),

		ParseDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   ns,
				Subsystem:   "parser",
				Name:        "parse_duration_seconds",
				Help:        "Time spent parsing an expression",
				Buckets:     []float64{1e-7, 5e-7, 1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 1e-3},
				ConstLabels: labels,
			},
			[]string{"parser_name"},
		),

		// Source Metrics
		SourceOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "source",
				Name:        "operations_total",
				Help:        "Total number of source operations",
				ConstLabels: labels,
			},
			[]string{"operation", "source_name"},
		),

		SourceErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "source",
				Name:        "errors_total",
				Help:        "Total number of failed source operations",
				ConstLabels: labels,
			},
			[]string{"operation", "source_name"},
		),

		SourceEntries: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   ns,
				Subsystem:   "source",
				Name:        "entries",
				Help:        "Number of entries seen by the last list operation",
				ConstLabels: labels,
			},
			[]string{"source_name"},
		),

		// Schedule Metrics
		ScheduleCompilations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "schedule",
				Name:        "compilations_total",
				Help:        "Total number of timers compiled into schedules",
				ConstLabels: labels,
			},
			[]string{"result"},
		),
	}
}
