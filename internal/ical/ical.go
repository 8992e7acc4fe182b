// Package ical exports a period table as an iCalendar feed with one
// all-day event per period.
package ical

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/gosimple/slug"

	"github.com/zapponejosh/uoyweek/internal/academic"
)

// ProductID identifies this program in exported calendars.
const ProductID = "-//uoyweek//Academic Periods//EN"

// lastPeriodDays is how long the final period of a table is shown for,
// since nothing marks where it ends.
const lastPeriodDays = 7

// Summary returns the event title for p: "Autumn Term",
// "Christmas Holidays" or "Semester".
func Summary(p academic.Period) string {
	switch p.Kind {
	case academic.KindTerm:
		return p.Name + " Term"
	case academic.KindHoliday:
		return p.Name + " Holidays"
	default:
		return p.Name
	}
}

// UID returns a stable event identifier for p.
func UID(p academic.Period) string {
	return fmt.Sprintf("%s-%s@uoyweek", slug.Make(Summary(p)), academic.FormatDate(p.Start))
}

// Build returns a calendar holding every period of table. Each event runs
// from its period's start until the next period starts. stamp is used as
// DTSTAMP on every event.
func Build(table *academic.Table, name string, stamp time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)
	if name != "" {
		cal.SetXWRCalName(name)
	}

	for p := range table.All() {
		end := p.Start.AddDate(0, 0, lastPeriodDays)
		if next, ok := table.Next(p); ok {
			end = next.Start
		}

		event := cal.AddEvent(UID(p))
		event.SetDtStampTime(stamp.UTC())
		event.SetAllDayStartAt(p.Start)
		event.SetAllDayEndAt(end)
		event.SetSummary(Summary(p))
		event.SetDescription(p.String())
	}

	return cal
}

// Write serializes the calendar for table to w.
func Write(w io.Writer, table *academic.Table, name string, stamp time.Time) error {
	if _, err := io.WriteString(w, Build(table, name, stamp).Serialize()); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	return nil
}
