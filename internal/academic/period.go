package academic

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind identifies the variant of a Period.
type Kind int

const (
	KindTerm Kind = iota + 1
	KindHoliday
	KindSemester
)

// Kinds returns all valid period kinds.
func Kinds() []Kind {
	return []Kind{KindTerm, KindHoliday, KindSemester}
}

func (k Kind) String() string {
	switch k {
	case KindTerm:
		return "term"
	case KindHoliday:
		return "holiday"
	case KindSemester:
		return "semester"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// IsValid checks if a kind is one of the known variants.
func (k Kind) IsValid() bool {
	return k >= KindTerm && k <= KindSemester
}

// ParseKind converts "term", "holiday" or "semester" to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown period kind %q", s)
}

// SemesterName is the name given to every semester period.
const SemesterName = "Semester"

// Period is a labeled span of time starting at Start and running until the
// next period in its Table begins. The zero value is not a valid Period;
// use NewTerm, NewHoliday or NewSemester.
type Period struct {
	Kind  Kind
	Start time.Time
	Name  string

	weeks []string // semester week names, nil for other kinds
}

// NewTerm returns a teaching term. The start is moved back to the Monday of
// the week containing start so that week numbers always begin on a Monday.
func NewTerm(start time.Time, name string) Period {
	return Period{Kind: KindTerm, Start: mondayOf(start), Name: name}
}

// NewHoliday returns a holiday beginning on start.
func NewHoliday(start time.Time, name string) Period {
	return Period{Kind: KindHoliday, Start: DateOf(start), Name: name}
}

// NewSemester returns a semester beginning on start whose weeks are named by
// weeks, in order. With no weeks given, DefaultSemesterWeeks is used.
func NewSemester(start time.Time, weeks ...string) Period {
	if len(weeks) == 0 {
		weeks = DefaultSemesterWeeks()
	}
	return Period{
		Kind:  KindSemester,
		Start: DateOf(start),
		Name:  SemesterName,
		weeks: append([]string(nil), weeks...),
	}
}

// Weeks returns a copy of the semester's week names.
func (p Period) Weeks() []string {
	return append([]string(nil), p.weeks...)
}

// WeekNumber returns the 1-based week of the period that date falls in.
// The Monday start of a term is the first day of week 1.
func (p Period) WeekNumber(date time.Time) int {
	return weekIndex(DaysBetween(p.Start, date)) + 1
}

// WeekName returns the name of the semester week that date falls in.
func (p Period) WeekName(date time.Time) (string, error) {
	idx := weekIndex(DaysBetween(p.Start, date))
	if idx < 0 || idx >= len(p.weeks) {
		return "", &OutOfRangeError{Date: DateOf(date), Index: idx, Len: len(p.weeks)}
	}
	return p.weeks[idx], nil
}

// FormatOptions control how a label is rendered.
type FormatOptions struct {
	Short bool // abbreviate the term name and weekday, drop " Holidays"
	Lower bool // lowercase the whole label
}

// Format renders the label for date within p.
//
//	Term:     "Autumn/3/Tuesday", short "Aut/3/Tue"
//	Holiday:  "Christmas Holidays", short "Christmas"
//	Semester: "Teaching Week 4" (Short has no effect)
func (p Period) Format(date time.Time, opts FormatOptions) (string, error) {
	var label string

	switch p.Kind {
	case KindTerm:
		name, dayName := p.Name, DayName(date)
		if opts.Short {
			name, dayName = abbreviate(p.Name), DayAbbr(date)
		}
		label = fmt.Sprintf("%s/%d/%s", name, p.WeekNumber(date), dayName)
	case KindHoliday:
		label = p.Name
		if !opts.Short {
			label += " Holidays"
		}
	case KindSemester:
		week, err := p.WeekName(date)
		if err != nil {
			return "", err
		}
		label = week
	default:
		return "", fmt.Errorf("format %s: unknown period kind", p)
	}

	if opts.Lower {
		// Casers hold state, so one is made per call.
		label = cases.Lower(language.English).String(label)
	}
	return label, nil
}

// String describes the period, e.g. `Term "Autumn" at 2019-09-30`.
func (p Period) String() string {
	return fmt.Sprintf("%s %q at %s", cases.Title(language.English).String(p.Kind.String()), p.Name, FormatDate(p.Start))
}

// abbreviate returns the first three characters of name.
func abbreviate(name string) string {
	r := []rune(name)
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}
