package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zapponejosh/uoyweek/internal/academic"
	"github.com/zapponejosh/uoyweek/internal/config"
)

// newTestApp returns an app over the given source with "now" fixed on a
// Sunday in the 2026/27 Autumn term.
func newTestApp(t *testing.T, cfg *config.Config) *app {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{TableSource: config.SourceBuiltin}
	}
	cfg.Port = 8080
	cfg.Env = config.EnvDevelopment
	cfg.Timezone = "UTC"
	cfg.TermDatesPrefix = "!termdates.set"
	cfg.LogLevel = "error"
	cfg.LogFormat = "text"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate config: %v", err)
	}

	a := &app{
		cfg: cfg,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now: func() time.Time { return time.Date(2026, time.October, 18, 23, 30, 0, 0, time.UTC) },
	}
	t.Cleanup(a.close)
	return a
}

// execute runs the command line and returns stdout.
func execute(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLabelCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"today", nil, "Autumn/3/Sunday\n"},
		{"short", []string{"-s"}, "Aut/3/Sun\n"},
		{"lower", []string{"--lower"}, "autumn/3/sunday\n"},
		{"explicit date", []string{"--date", "2019-10-15"}, "Autumn/3/Tuesday\n"},
		{"holiday short lower", []string{"-s", "-l", "--date", "2019-12-25"}, "christmas\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, newTestApp(t, nil), tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabelCmd_Errors(t *testing.T) {
	t.Run("bad date", func(t *testing.T) {
		if _, err := execute(t, newTestApp(t, nil), "--date", "15/10/2019"); err == nil {
			t.Error("expected error for malformed date")
		}
	})

	t.Run("before table", func(t *testing.T) {
		_, err := execute(t, newTestApp(t, nil), "--date", "2018-09-23")
		if !academic.IsNoPeriodFound(err) {
			t.Errorf("err = %v, want NoPeriodFoundError", err)
		}
	})

	t.Run("unexpected argument", func(t *testing.T) {
		if _, err := execute(t, newTestApp(t, nil), "tomorrow"); err == nil {
			t.Error("expected error for positional argument")
		}
	})
}

func TestTermDatesCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"during autumn", []string{"termdates"}, "!termdates.set 2026-09-28 2027-01-11 2027-04-19\n"},
		{"custom prefix", []string{"termdates", "--prefix", "!td"}, "!td 2026-09-28 2027-01-11 2027-04-19\n"},
		{"summer holidays", []string{"termdates", "--date", "2026-08-01"}, "!termdates.set 2026-09-28 2027-01-11 2027-04-19\n"},
		{"during spring", []string{"--date", "2026-02-02", "termdates"}, "!termdates.set 2026-09-28 2026-01-12 2026-04-20\n"},
		{"last autumn in table", []string{"termdates", "--date", "2027-10-01"}, "!termdates.set 2027-09-27 2028-01-10 2028-04-24\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, newTestApp(t, nil), tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPeriodsCmd(t *testing.T) {
	got, err := execute(t, newTestApp(t, nil), "periods", "--kind", "holiday", "--name", "Easter")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10:\n%s", len(lines), got)
	}
	first := strings.Fields(lines[0])
	if first[0] != "2019-03-15" || first[1] != "holiday" || first[2] != "Easter" {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasSuffix(lines[0], "ago") {
		t.Errorf("past period should read as ago: %q", lines[0])
	}
	if !strings.HasSuffix(lines[len(lines)-1], "from now") {
		t.Errorf("future period should read as from now: %q", lines[len(lines)-1])
	}

	if _, err := execute(t, newTestApp(t, nil), "periods", "--kind", "vacation"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestCheckCmd(t *testing.T) {
	t.Run("builtin table", func(t *testing.T) {
		got, err := execute(t, newTestApp(t, nil), "check")
		if err != nil {
			t.Fatalf("execute: %v", err)
		}
		want := "ok: 60 periods from 2018-09-24 to 2028-06-30\n"
		if got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})

	t.Run("short semester", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "table.yaml")
		doc := `periods:
  - kind: semester
    start: 2023-09-25
    weeks: [Freshers Week, Teaching Week 1]
  - kind: holiday
    name: Christmas
    start: 2023-10-23
`
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}

		a := newTestApp(t, &config.Config{TableSource: config.SourceFile, TablePath: path})
		_, err := execute(t, a, "check")
		if !academic.IsConfiguration(err) {
			t.Errorf("err = %v, want ConfigurationError", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		a := newTestApp(t, &config.Config{
			TableSource: config.SourceFile,
			TablePath:   filepath.Join(t.TempDir(), "missing.yaml"),
		})
		if _, err := execute(t, a, "check"); err == nil {
			t.Error("expected error for missing table file")
		}
	})
}
