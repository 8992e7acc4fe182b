package tablefile

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/zapponejosh/uoyweek/internal/academic"
)

func TestDecode(t *testing.T) {
	doc := `
periods:
  - kind: holiday
    name: Christmas
    start: 2019-12-06
  - kind: term
    name: Autumn
    start: 2019-10-02
  - kind: semester
    start: "2023-09-25"
    weeks: [Freshers Week, Teaching Week 1]
`
	table, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	var got []string
	for p := range table.All() {
		got = append(got, p.String())
	}
	want := []string{
		`Term "Autumn" at 2019-09-30`,
		`Holiday "Christmas" at 2019-12-06`,
		`Semester "Semester" at 2023-09-25`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded periods mismatch (-want +got):\n%s", diff)
	}

	label, err := table.Label(academic.Date(2023, time.October, 2), academic.FormatOptions{})
	if err != nil {
		t.Fatalf("Label() error = %v", err)
	}
	if label != "Teaching Week 1" {
		t.Errorf("Label() = %q, want %q", label, "Teaching Week 1")
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		wantConfig bool
		wantText   string
	}{
		{name: "empty document", doc: "", wantConfig: true},
		{name: "no periods", doc: "periods: []\n", wantConfig: true},
		{name: "unknown kind", doc: "periods:\n  - {kind: vacation, name: X, start: 2020-01-01}\n", wantText: "entry 0"},
		{name: "bad date", doc: "periods:\n  - {kind: term, name: X, start: 01/01/2020}\n", wantText: "entry 0"},
		{name: "unknown field", doc: "periods:\n  - {kind: term, name: X, start: 2020-01-06, end: 2020-03-13}\n", wantText: "end"},
		{name: "duplicate start", doc: "periods:\n  - {kind: term, name: A, start: 2020-01-06}\n  - {kind: holiday, name: B, start: 2020-01-06}\n", wantConfig: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("Decode() error = nil, want error")
			}
			if tt.wantConfig && !academic.IsConfiguration(err) {
				t.Errorf("Decode() error = %v, want ConfigurationError", err)
			}
			if tt.wantText != "" && !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("Decode() error = %v, want it to mention %q", err, tt.wantText)
			}
		})
	}
}

func TestEncode_RoundTripsYork(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, academic.York()); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	table, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want, got := academic.York().Periods(), table.Periods()
	if len(got) != len(want) {
		t.Fatalf("decoded %d periods, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].String() != want[i].String() {
			t.Errorf("period %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLoad(t *testing.T) {
	table, err := Load("testdata/semesters.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
	if got := len(table.Last().Weeks()); got != len(academic.DefaultSemesterWeeks()) {
		t.Errorf("semester has %d weeks, want the default list", got)
	}

	if _, err := Load("testdata/missing.yaml"); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}
