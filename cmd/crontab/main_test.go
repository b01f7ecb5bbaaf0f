package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vnykmshr/crontab/internal/testutil"
	cterrors "github.com/vnykmshr/crontab/pkg/common/errors"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCommandStructure(t *testing.T) {
	root := newRootCmd()
	want := map[string]bool{"parse": false, "next": false, "store": false}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestParse_Args(t *testing.T) {
	out, _, err := execute(t, "", "parse", "*/7,8,30-35 * 3,*/4 * *,4 bar")
	testutil.AssertNoError(t, err)

	want := "arg:1\tminute=*/7,8,30-35 hour=* day-of-month=3,*/4 month=* day-of-week=*,4\trest=\" bar\"\n"
	testutil.AssertEqual(t, out, want)
}

func TestParse_Stdin(t *testing.T) {
	stdin := "# nightly\n0 3 * * * /usr/bin/backup\n\n*/5 * * * * /usr/bin/poll\n"
	out, _, err := execute(t, stdin, "parse")
	testutil.AssertNoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	testutil.AssertEqual(t, len(lines), 2)
	if !strings.HasPrefix(lines[0], "line:2\t") || !strings.HasPrefix(lines[1], "line:4\t") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestParse_JSON(t *testing.T) {
	out, _, err := execute(t, "", "parse", "-o", "json", "* * * * * foo")
	testutil.AssertNoError(t, err)

	var entries []struct {
		ID        string              `json:"id"`
		Timer     map[string][]string `json:"timer"`
		Remainder string              `json:"remainder"`
	}
	testutil.AssertNoError(t, json.Unmarshal([]byte(out), &entries))
	testutil.AssertEqual(t, len(entries), 1)
	testutil.AssertEqual(t, entries[0].Remainder, " foo")
	testutil.AssertDeepEqual(t, entries[0].Timer["minutes"], []string{"*"})
	testutil.AssertDeepEqual(t, entries[0].Timer["days_of_week"], []string{"*"})
}

func TestParse_YAML(t *testing.T) {
	out, _, err := execute(t, "", "parse", "-o", "yaml", "0 9 * * 1-5")
	testutil.AssertNoError(t, err)

	var entries []struct {
		ID    string              `yaml:"id"`
		Timer map[string][]string `yaml:"timer"`
	}
	testutil.AssertNoError(t, yaml.Unmarshal([]byte(out), &entries))
	testutil.AssertEqual(t, len(entries), 1)
	testutil.AssertEqual(t, entries[0].ID, "arg:1")
	testutil.AssertDeepEqual(t, entries[0].Timer["days_of_week"], []string{"1-5"})
}

func TestParse_Failure(t *testing.T) {
	out, _, err := execute(t, "", "parse", "* * * * *", "*/7!,8 * * * *")
	testutil.AssertErrorIs(t, err, cterrors.ErrMalformedSeparator)
	if !strings.Contains(err.Error(), "argument 2") {
		t.Errorf("error should name the failing argument, got %q", err)
	}
	if !strings.HasPrefix(out, "arg:1\t") {
		t.Errorf("valid lines should still be printed, got %q", out)
	}
}

func TestParse_ArgumentsAreNotCrontabFiles(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want error
	}{
		{"comment", "# 0 3 * * *", cterrors.ErrUnparseableAtom},
		{"leading space", " 0 3 * * *", cterrors.ErrUnparseableAtom},
		{"blank", "", cterrors.ErrUnparseableAtom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", "parse", tt.arg)
			testutil.AssertErrorIs(t, err, tt.want)
			testutil.AssertEqual(t, out, "")
		})
	}
}

func TestParse_UnknownOutput(t *testing.T) {
	_, _, err := execute(t, "", "parse", "-o", "xml", "* * * * *")
	testutil.AssertError(t, err)
}

func TestParse_Metrics(t *testing.T) {
	out, _, err := execute(t, "", "--metrics", "parse", "* * * * *")
	testutil.AssertNoError(t, err)
	for _, want := range []string{
		`crontab_parser_parses_total{parser_name="cli"} 1`,
		`crontab_parser_parse_duration_seconds{parser_name="cli"} count=1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got %q", want, out)
		}
	}
}

func TestNext(t *testing.T) {
	out, _, err := execute(t, "", "next", "--from", "2024-06-01T10:00:00Z", "-n", "3", "30 9 * * 1-5")
	testutil.AssertNoError(t, err)

	want := "2024-06-03T09:30:00Z\n2024-06-04T09:30:00Z\n2024-06-05T09:30:00Z\n"
	testutil.AssertEqual(t, out, want)
}

func TestNext_JSONAndTrailingText(t *testing.T) {
	out, stderr, err := execute(t, "", "next", "--from", "2024-01-01T00:00:00Z", "-n", "2", "-o", "json", "0 12 * * * /bin/true")
	testutil.AssertNoError(t, err)

	var times []string
	testutil.AssertNoError(t, json.Unmarshal([]byte(out), &times))
	testutil.AssertDeepEqual(t, times, []string{"2024-01-01T12:00:00Z", "2024-01-02T12:00:00Z"})
	if !strings.Contains(stderr, "ignoring text after the schedule") {
		t.Errorf("expected warning on stderr, got %q", stderr)
	}
}

func TestNext_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero count", []string{"next", "-n", "0", "* * * * *"}},
		{"bad from", []string{"next", "--from", "yesterday", "* * * * *"}},
		{"parse error", []string{"next", "* 24 * * *"}},
		{"zero stride", []string{"next", "*/0 * * * *"}},
		{"missing argument", []string{"next"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			testutil.AssertError(t, err)
		})
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crontab.toml")
	testutil.AssertNoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\nformat = \"json\"\n"), 0o600))

	_, stderr, err := execute(t, "", "--config", path, "parse", "* * * * *")
	testutil.AssertNoError(t, err)
	for _, want := range []string{
		`"message":"configuration loaded"`,
		`"command":"crontab parse"`,
		`"message":"parsed input"`,
		`"elapsed":`,
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("expected %s in JSON debug log, got %q", want, stderr)
		}
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	testutil.AssertNoError(t, os.WriteFile(bad, []byte("[log]\nformat = \"xml\"\n"), 0o600))
	_, _, err = execute(t, "", "--config", bad, "parse", "* * * * *")
	testutil.AssertErrorIs(t, err, cterrors.ErrInvalidConfiguration)
}

func TestLogLevelFlagOverridesConfig(t *testing.T) {
	_, stderr, err := execute(t, "", "--log-level", "error", "next", "--from", "2024-01-01T00:00:00Z", "-n", "1", "0 12 * * * trailing")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stderr, "")
}
