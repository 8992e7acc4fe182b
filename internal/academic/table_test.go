package academic

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(
		NewHoliday(Date(2019, time.December, 6), "Christmas"),
		NewTerm(Date(2019, time.September, 30), "Autumn"),
		NewTerm(Date(2020, time.January, 6), "Spring"),
		NewHoliday(Date(2020, time.March, 13), "Easter"),
		NewSemester(Date(2023, time.September, 25)),
	)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return table
}

func TestNewTable_Sorts(t *testing.T) {
	table := testTable(t)

	var got []string
	for p := range table.All() {
		got = append(got, FormatDate(p.Start))
	}
	want := []string{"2019-09-30", "2019-12-06", "2020-01-06", "2020-03-13", "2023-09-25"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table order mismatch (-want +got):\n%s", diff)
	}
}

func TestNewTable_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		periods []Period
	}{
		{"empty", nil},
		{"duplicate start", []Period{
			NewTerm(Date(2020, time.January, 6), "Spring"),
			NewHoliday(Date(2020, time.January, 6), "Winter"),
		}},
		{"duplicate after monday normalization", []Period{
			NewTerm(Date(2020, time.January, 6), "Spring"),
			NewTerm(Date(2020, time.January, 8), "Spring"),
		}},
		{"empty name", []Period{NewHoliday(Date(2020, time.March, 13), " ")}},
		{"zero period", []Period{{}}},
		{"semester empty week", []Period{NewSemester(Date(2023, time.September, 25), "Freshers Week", "")}},
		{"semester without weeks", []Period{{Kind: KindSemester, Start: Date(2023, time.September, 25), Name: SemesterName}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.periods...)
			if !IsConfiguration(err) {
				t.Errorf("NewTable() error = %v, want ConfigurationError", err)
			}
		})
	}
}

func TestMustTable_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustTable() did not panic on empty input")
		}
	}()
	MustTable()
}

func TestTable_Classify(t *testing.T) {
	table := testTable(t)

	tests := []struct {
		date      time.Time
		wantName  string
		wantStart time.Time
	}{
		{Date(2019, time.September, 30), "Autumn", Date(2019, time.September, 30)},
		{Date(2019, time.December, 5), "Autumn", Date(2019, time.September, 30)},
		{Date(2019, time.December, 6), "Christmas", Date(2019, time.December, 6)},
		{Date(2020, time.January, 5), "Christmas", Date(2019, time.December, 6)},
		{Date(2020, time.January, 6), "Spring", Date(2020, time.January, 6)},
		{time.Date(2020, time.March, 13, 23, 59, 0, 0, time.UTC), "Easter", Date(2020, time.March, 13)},
		{Date(2023, time.September, 24), "Easter", Date(2020, time.March, 13)},
		{Date(2024, time.January, 1), SemesterName, Date(2023, time.September, 25)},
	}

	for _, tt := range tests {
		t.Run(FormatDate(tt.date), func(t *testing.T) {
			p, err := table.Classify(tt.date)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if p.Name != tt.wantName || !p.Start.Equal(tt.wantStart) {
				t.Errorf("Classify() = %s, want %q at %s", p, tt.wantName, FormatDate(tt.wantStart))
			}
		})
	}
}

func TestTable_Classify_BeforeTable(t *testing.T) {
	table := testTable(t)

	_, err := table.Classify(Date(2019, time.September, 29))
	if !IsNoPeriodFound(err) {
		t.Fatalf("Classify() error = %v, want NoPeriodFoundError", err)
	}

	var npf *NoPeriodFoundError
	if errors.As(err, &npf) && !npf.Earliest.Equal(Date(2019, time.September, 30)) {
		t.Errorf("Earliest = %s, want 2019-09-30", FormatDate(npf.Earliest))
	}
}

// Every date from the first start onward resolves to the latest period not
// after it, and the resolved start never moves backwards as dates advance.
func TestTable_Classify_TotalAndMonotonic(t *testing.T) {
	table := York()
	periods := table.Periods()

	var prev time.Time
	end := table.Last().Start.AddDate(0, 1, 0)
	for d := table.First().Start; d.Before(end); d = d.AddDate(0, 0, 1) {
		p, err := table.Classify(d)
		if err != nil {
			t.Fatalf("Classify(%s) error = %v", FormatDate(d), err)
		}

		var want time.Time
		for _, q := range periods {
			if !q.Start.After(d) && q.Start.After(want) {
				want = q.Start
			}
		}
		if !p.Start.Equal(want) {
			t.Fatalf("Classify(%s).Start = %s, want %s", FormatDate(d), FormatDate(p.Start), FormatDate(want))
		}
		if p.Start.Before(prev) {
			t.Fatalf("Classify(%s).Start = %s went backwards from %s", FormatDate(d), FormatDate(p.Start), FormatDate(prev))
		}
		prev = p.Start
	}
}

func TestTable_Label(t *testing.T) {
	table := testTable(t)

	tests := []struct {
		date time.Time
		opts FormatOptions
		want string
	}{
		{Date(2020, time.January, 6), FormatOptions{}, "Spring/1/Monday"},
		{Date(2020, time.January, 12), FormatOptions{}, "Spring/1/Sunday"},
		{Date(2020, time.January, 13), FormatOptions{}, "Spring/2/Monday"},
		{Date(2019, time.December, 25), FormatOptions{Short: true, Lower: true}, "christmas"},
		{Date(2023, time.October, 2), FormatOptions{}, "Teaching Week 1"},
	}

	for _, tt := range tests {
		got, err := table.Label(tt.date, tt.opts)
		if err != nil {
			t.Errorf("Label(%s) error = %v", FormatDate(tt.date), err)
			continue
		}
		if got != tt.want {
			t.Errorf("Label(%s) = %q, want %q", FormatDate(tt.date), got, tt.want)
		}
	}
}

func TestTable_Label_Idempotent(t *testing.T) {
	table := York()
	date := Date(2024, time.February, 14)
	opts := FormatOptions{Short: true}

	first, err := table.Label(date, opts)
	if err != nil {
		t.Fatalf("Label() error = %v", err)
	}
	second, err := table.Label(date, opts)
	if err != nil {
		t.Fatalf("Label() error = %v", err)
	}
	if first != second {
		t.Errorf("Label() = %q then %q", first, second)
	}
}

func TestTable_Label_Errors(t *testing.T) {
	table := testTable(t)

	if _, err := table.Label(Date(2019, time.January, 1), FormatOptions{}); !IsNoPeriodFound(err) {
		t.Errorf("Label(before table) error = %v, want NoPeriodFoundError", err)
	}
	if _, err := table.Label(Date(2026, time.January, 1), FormatOptions{}); !IsOutOfRange(err) {
		t.Errorf("Label(past semester weeks) error = %v, want OutOfRangeError", err)
	}
}

func TestTable_Select(t *testing.T) {
	table := York()

	autumns := table.Select(KindTerm, "Autumn")
	if len(autumns) != 10 {
		t.Fatalf("Select(term, Autumn) returned %d periods, want 10", len(autumns))
	}
	for _, p := range autumns {
		if p.Kind != KindTerm || p.Name != "Autumn" {
			t.Errorf("Select(term, Autumn) returned %s", p)
		}
	}

	// "Summer" names both a term and a holiday.
	if got := len(table.Select(0, "Summer")); got != 20 {
		t.Errorf("Select(any, Summer) returned %d periods, want 20", got)
	}
	if got := len(table.Select(KindHoliday, "")); got != 30 {
		t.Errorf("Select(holiday, any) returned %d periods, want 30", got)
	}
}

func TestTable_Next(t *testing.T) {
	table := testTable(t)

	next, ok := table.Next(table.First())
	if !ok || next.Name != "Christmas" {
		t.Errorf("Next(first) = %s, %v; want Christmas", next, ok)
	}
	if _, ok := table.Next(table.Last()); ok {
		t.Error("Next(last) ok = true, want false")
	}
}

func TestTable_CheckCoverage(t *testing.T) {
	short, err := NewTable(
		NewSemester(Date(2023, time.September, 25), "Freshers Week", "Teaching Week 1"),
		NewHoliday(Date(2023, time.October, 20), "Autumn"),
	)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	if err := short.CheckCoverage(); !IsConfiguration(err) {
		t.Errorf("CheckCoverage() error = %v, want ConfigurationError", err)
	}

	exact, err := NewTable(
		NewSemester(Date(2023, time.September, 25), "Freshers Week", "Teaching Week 1"),
		NewHoliday(Date(2023, time.October, 9), "Autumn"),
	)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	if err := exact.CheckCoverage(); err != nil {
		t.Errorf("CheckCoverage() error = %v, want nil", err)
	}

	if err := York().CheckCoverage(); err != nil {
		t.Errorf("York().CheckCoverage() error = %v", err)
	}
}

func TestTable_PeriodsIsCopy(t *testing.T) {
	table := testTable(t)
	periods := table.Periods()
	periods[0].Name = "changed"

	if table.First().Name != "Autumn" {
		t.Errorf("First().Name = %q after mutating Periods() copy", table.First().Name)
	}
}
