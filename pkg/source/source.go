// Package source loads crontab lines from readers and Redis and parses them.
package source

import (
	"github.com/vnykmshr/crontab/pkg/crontab"
)

// Parser parses the five-field expression at the start of a line.
// *instrument.Parser satisfies it.
type Parser interface {
	Parse(input string) (crontab.Timer, string, error)
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(input string) (crontab.Timer, string, error)

// Parse calls f(input).
func (f ParserFunc) Parse(input string) (crontab.Timer, string, error) {
	return f(input)
}

// DefaultParser is crontab.Parse without instrumentation.
var DefaultParser Parser = ParserFunc(crontab.Parse)

// Entry is one parsed crontab line.
type Entry struct {
	ID        string        `json:"id" yaml:"id"`
	Line      string        `json:"line" yaml:"line"`
	Timer     crontab.Timer `json:"timer" yaml:"timer"`
	Remainder string        `json:"remainder" yaml:"remainder"`
}

func parseEntry(p Parser, id, line string) (Entry, error) {
	timer, rest, err := p.Parse(line)
	if err != nil {
		return Entry{}, err
	}
	return Entry{ID: id, Line: line, Timer: timer, Remainder: rest}, nil
}
