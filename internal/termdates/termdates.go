// Package termdates works out the start dates of the next Autumn, Spring
// and Summer terms, as announced to chat bots with a "!termdates.set" line.
package termdates

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/zapponejosh/uoyweek/internal/academic"
)

// DefaultPrefix is the chat-bot command that sets the three term dates.
const DefaultPrefix = "!termdates.set"

// Names of the three terms of an academic year, in report order.
var Names = []string{"Autumn", "Spring", "Summer"}

var (
	// ErrNoUpcomingTerm is returned when the table has no future term of a
	// given name, which means the table needs extending.
	ErrNoUpcomingTerm = errors.New("no upcoming term")

	// ErrUnexpectedTerm is returned when today falls in a term that is not
	// one of Names.
	ErrUnexpectedTerm = errors.New("unexpected term name")
)

// Report holds one term per name in Names. At most one of them is the
// current term; the rest have not started yet.
type Report struct {
	Autumn academic.Period
	Spring academic.Period
	Summer academic.Period

	// Current is the name of the term containing the report date, or ""
	// outside term time.
	Current string
}

// Upcoming builds the report for today: the nearest not-yet-started term of
// each name, with the term in progress (if any) taking its name's place.
func Upcoming(table *academic.Table, today time.Time) (Report, error) {
	today = academic.DateOf(today)
	terms := make(map[string]academic.Period, len(Names))

	var current string
	period, err := table.Classify(today)
	switch {
	case err != nil && !academic.IsNoPeriodFound(err):
		return Report{}, fmt.Errorf("classify %s: %w", academic.FormatDate(today), err)
	case err == nil && period.Kind == academic.KindTerm:
		if !slices.Contains(Names, period.Name) {
			return Report{}, fmt.Errorf("%w %q for current period", ErrUnexpectedTerm, period.Name)
		}
		terms[period.Name] = period
		current = period.Name
	}

	for _, name := range Names {
		if _, ok := terms[name]; ok {
			continue
		}
		next, ok := nextTerm(table, name, today)
		if !ok {
			return Report{}, fmt.Errorf("%w named %q after %s", ErrNoUpcomingTerm, name, academic.FormatDate(today))
		}
		terms[name] = next
	}

	return Report{
		Autumn:  terms["Autumn"],
		Spring:  terms["Spring"],
		Summer:  terms["Summer"],
		Current: current,
	}, nil
}

// nextTerm returns the earliest term called name starting after today.
// Terms are selected in start order, so the first match is the nearest.
func nextTerm(table *academic.Table, name string, today time.Time) (academic.Period, bool) {
	for _, p := range table.Select(academic.KindTerm, name) {
		if p.Start.After(today) {
			return p, true
		}
	}
	return academic.Period{}, false
}

// Terms returns the report's terms in Names order.
func (r Report) Terms() []academic.Period {
	return []academic.Period{r.Autumn, r.Spring, r.Summer}
}

// Command renders the chat-bot command, e.g.
// "!termdates.set 2026-09-28 2027-01-11 2027-04-19". An empty prefix uses
// DefaultPrefix.
func (r Report) Command(prefix string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	parts := []string{prefix}
	for _, t := range r.Terms() {
		parts = append(parts, academic.FormatDate(t.Start))
	}
	return strings.Join(parts, " ")
}
