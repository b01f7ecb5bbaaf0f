package crontab

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	cterrors "github.com/vnykmshr/crontab/pkg/common/errors"
)

// UnmarshalText parses a single atom in crontab notation. A bare Value has no
// field, so numbers are checked against the minute range, the widest of the
// five. Decoding a whole Timer checks each value against its own field.
func (v *Value) UnmarshalText(text []byte) error {
	return v.decode(Minute, string(text))
}

func (v *Value) decode(f Field, s string) error {
	parsed, rest, err := ParseValue(f, s)
	if err != nil {
		return err
	}
	if rest != "" {
		p := &parser{input: s, pos: len(s) - len(rest)}
		return p.fail(f, cterrors.ErrMalformedSeparator, p.pos, nil)
	}
	*v = parsed
	return nil
}

// timerText is the encoded form of a Timer: one list of atoms per field.
type timerText struct {
	Minutes    []string `json:"minutes" yaml:"minutes"`
	Hours      []string `json:"hours" yaml:"hours"`
	Days       []string `json:"days" yaml:"days"`
	Months     []string `json:"months" yaml:"months"`
	DaysOfWeek []string `json:"days_of_week" yaml:"days_of_week"`
}

func (tt timerText) field(f Field) []string {
	switch f {
	case Minute:
		return tt.Minutes
	case Hour:
		return tt.Hours
	case DayOfMonth:
		return tt.Days
	case Month:
		return tt.Months
	default:
		return tt.DaysOfWeek
	}
}

// UnmarshalJSON decodes the form produced by json.Marshal, checking every
// atom against its field's boundaries.
func (t *Timer) UnmarshalJSON(data []byte) error {
	var raw timerText
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return t.decode(raw)
}

// UnmarshalYAML decodes the form produced by yaml.Marshal.
func (t *Timer) UnmarshalYAML(node *yaml.Node) error {
	var raw timerText
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return t.decode(raw)
}

func (t *Timer) decode(raw timerText) error {
	var out Timer
	for _, f := range Fields {
		atoms := raw.field(f)
		if len(atoms) == 0 {
			continue
		}
		values := make([]Value, len(atoms))
		for i, s := range atoms {
			if err := values[i].decode(f, s); err != nil {
				return err
			}
		}
		out.set(f, values)
	}
	*t = out
	return nil
}
