package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/vnykmshr/crontab/pkg/crontab"
	"github.com/vnykmshr/crontab/pkg/source"
)

// render writes v as JSON or YAML. Text output is handled by the caller.
func render(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeEntries(w io.Writer, format string, entries []source.Entry) error {
	if format != "text" {
		if entries == nil {
			entries = []source.Entry{}
		}
		return render(w, format, entries)
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%s\trest=%q\n", e.ID, describe(e.Timer), e.Remainder); err != nil {
			return err
		}
	}
	return nil
}

// describe renders t as field=values pairs.
func describe(t crontab.Timer) string {
	parts := make([]string, 0, len(crontab.Fields))
	for _, f := range crontab.Fields {
		values := t.Field(f)
		strs := make([]string, len(values))
		for i, v := range values {
			strs[i] = v.String()
		}
		parts = append(parts, f.String()+"="+strings.Join(strs, ","))
	}
	return strings.Join(parts, " ")
}

// writeMetrics prints every gathered sample as "name{labels} value".
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			pairs := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				pairs = append(pairs, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			name := mf.GetName()
			if len(pairs) > 0 {
				name += "{" + strings.Join(pairs, ",") + "}"
			}

			switch {
			case m.GetCounter() != nil:
				lines = append(lines, fmt.Sprintf("%s %g", name, m.GetCounter().GetValue()))
			case m.GetGauge() != nil:
				lines = append(lines, fmt.Sprintf("%s %g", name, m.GetGauge().GetValue()))
			case m.GetHistogram() != nil:
				lines = append(lines, fmt.Sprintf("%s count=%d", name, m.GetHistogram().GetSampleCount()))
			}
		}
	}
	sort.Strings(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
