// Package instrument wraps the crontab parser with Prometheus metrics.
package instrument

import (
	"sync"
	"time"

	cterrors "github.com/vnykmshr/crontab/pkg/common/errors"
	"github.com/vnykmshr/crontab/pkg/common/validation"
	"github.com/vnykmshr/crontab/pkg/crontab"
	"github.com/vnykmshr/crontab/pkg/metrics"
)

// Parser is a named crontab parser that records parse counts, failures and
// latency when metrics are enabled. It is safe for concurrent use.
type Parser struct {
	name string

	mu       sync.RWMutex
	registry *metrics.Registry
	now      func() time.Time
}

var _ metrics.Instrumentable = (*Parser)(nil)

// New creates a Parser with metrics disabled.
func New(name string) *Parser {
	return &Parser{name: name, now: time.Now}
}

// NewWithMetrics creates a Parser reporting to the default registry.
func NewWithMetrics(name string) *Parser {
	p := New(name)
	_ = p.EnableMetrics(metrics.DefaultConfig())
	return p
}

// Name returns the parser_name label value.
func (p *Parser) Name() string { return p.name }

// Parse parses input with crontab.Parse and records the outcome.
func (p *Parser) Parse(input string) (crontab.Timer, string, error) {
	p.mu.RLock()
	reg := p.registry
	p.mu.RUnlock()

	if reg == nil {
		return crontab.Parse(input)
	}

	start := p.now()
	timer, rest, err := crontab.Parse(input)
	reg.ParseDuration.WithLabelValues(p.name).Observe(p.now().Sub(start).Seconds())
	reg.Parses.WithLabelValues(p.name).Inc()
	if err != nil {
		reg.ParseFailures.WithLabelValues(p.name, cterrors.Reason(err)).Inc()
	}
	return timer, rest, err
}

// EnableMetrics enables metrics collection for this parser.
func (p *Parser) EnableMetrics(config metrics.Config) error {
	if err := validation.ValidateNotEmpty("instrument", "name", p.name); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !config.Enabled {
		p.registry = nil
		return nil
	}
	p.registry = metrics.RegistryFor(config)
	return nil
}

// DisableMetrics disables metrics collection for this parser.
func (p *Parser) DisableMetrics() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.registry = nil
}

// Registry returns the registry metrics are recorded to, or nil when metrics
// are disabled. Other components can share it to report under the same
// registerer.
func (p *Parser) Registry() *metrics.Registry {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.registry
}

// MetricsEnabled returns true if metrics are currently enabled.
func (p *Parser) MetricsEnabled() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.registry != nil
}
