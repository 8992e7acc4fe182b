package academic

import (
	"errors"
	"fmt"
	"iter"
	"sort"
	"strings"
	"time"
)

// Table is an immutable sequence of periods sorted by start date.
// It is safe for concurrent use.
type Table struct {
	periods []Period
}

// NewTable validates periods and returns them as a sorted Table.
//
// A *ConfigurationError is returned if periods is empty, if two periods
// start on the same day (after term starts are moved to Mondays), if a
// period has no name, or if a semester has no usable week names.
func NewTable(periods ...Period) (*Table, error) {
	if len(periods) == 0 {
		return nil, configErrorf("no periods")
	}

	sorted := make([]Period, len(periods))
	for i, p := range periods {
		if err := validatePeriod(p); err != nil {
			return nil, fmt.Errorf("period %d: %w", i, err)
		}
		p.weeks = p.Weeks()
		sorted[i] = p
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start.Equal(sorted[i-1].Start) {
			return nil, configErrorf("%s and %s start on the same day", sorted[i-1], sorted[i])
		}
	}

	return &Table{periods: sorted}, nil
}

// MustTable is like NewTable but panics on error. It is intended for
// tables written as literals in source.
func MustTable(periods ...Period) *Table {
	t, err := NewTable(periods...)
	if err != nil {
		panic(err)
	}
	return t
}

func validatePeriod(p Period) error {
	if !p.Kind.IsValid() {
		return configErrorf("unknown kind %d", int(p.Kind))
	}
	if strings.TrimSpace(p.Name) == "" {
		return configErrorf("%s starting %s has no name", p.Kind, FormatDate(p.Start))
	}
	if p.Start.IsZero() {
		return configErrorf("%s %q has no start date", p.Kind, p.Name)
	}
	if p.Kind != KindSemester {
		return nil
	}
	if len(p.weeks) == 0 {
		return configErrorf("semester starting %s has no week names", FormatDate(p.Start))
	}
	for i, w := range p.weeks {
		if strings.TrimSpace(w) == "" {
			return configErrorf("semester starting %s: week %d has an empty name", FormatDate(p.Start), i)
		}
	}
	return nil
}

// Classify returns the period containing date: the period with the latest
// start on or before date. A *NoPeriodFoundError is returned if date is
// earlier than the first period.
func (t *Table) Classify(date time.Time) (Period, error) {
	date = DateOf(date)

	// First index whose start is after date; the one before it applies.
	i := sort.Search(len(t.periods), func(i int) bool {
		return t.periods[i].Start.After(date)
	})
	if i == 0 {
		return Period{}, &NoPeriodFoundError{Date: date, Earliest: t.periods[0].Start}
	}
	return t.periods[i-1], nil
}

// Label classifies date and formats it.
func (t *Table) Label(date time.Time, opts FormatOptions) (string, error) {
	p, err := t.Classify(date)
	if err != nil {
		return "", err
	}
	return p.Format(date, opts)
}

// Len returns the number of periods.
func (t *Table) Len() int { return len(t.periods) }

// First returns the earliest period.
func (t *Table) First() Period { return t.periods[0] }

// Last returns the latest period.
func (t *Table) Last() Period { return t.periods[len(t.periods)-1] }

// Periods returns a copy of all periods in start order.
func (t *Table) Periods() []Period {
	return append([]Period(nil), t.periods...)
}

// All iterates over the periods in start order.
func (t *Table) All() iter.Seq[Period] {
	return func(yield func(Period) bool) {
		for _, p := range t.periods {
			if !yield(p) {
				return
			}
		}
	}
}

// Select returns, in start order, the periods of the given kind whose name
// equals name. A zero kind or an empty name matches everything.
func (t *Table) Select(kind Kind, name string) []Period {
	var out []Period
	for p := range t.All() {
		if kind != 0 && p.Kind != kind {
			continue
		}
		if name != "" && p.Name != name {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Next returns the period following p in the table, if any.
func (t *Table) Next(p Period) (Period, bool) {
	i := sort.Search(len(t.periods), func(i int) bool {
		return t.periods[i].Start.After(p.Start)
	})
	if i == len(t.periods) {
		return Period{}, false
	}
	return t.periods[i], true
}

// CheckCoverage reports every semester whose week names run out before
// the next period begins. The last period is open ended and is not checked.
func (t *Table) CheckCoverage() error {
	var errs []error
	for i, p := range t.periods {
		if p.Kind != KindSemester || i == len(t.periods)-1 {
			continue
		}
		next := t.periods[i+1]
		needed := weekIndex(DaysBetween(p.Start, next.Start)-1) + 1
		if needed > len(p.weeks) {
			errs = append(errs, configErrorf("semester starting %s names %d weeks but runs %d weeks until %s",
				FormatDate(p.Start), len(p.weeks), needed, next))
		}
	}
	return errors.Join(errs...)
}
