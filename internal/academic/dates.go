// Package academic classifies calendar dates into academic periods
// (teaching terms, holidays and semesters) and formats them as labels
// such as "Autumn/3/Tuesday" or "Christmas Holidays".
package academic

import (
	"fmt"
	"time"
)

// DateLayout is the ISO-8601 calendar date layout used for input and output.
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// Date returns the calendar date y-m-d as midnight UTC.
//
// All dates handled by this package are normalized this way so that
// differences between them are always whole multiples of 24 hours.
func Date(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

// DateOf returns the calendar date of t, as observed in t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// ParseDate parses a date string in YYYY-MM-DD format.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// DaysBetween returns the number of whole days from a to b.
// The result is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)) / day)
}

// weekIndex returns floor(days / 7), rounding toward negative infinity.
func weekIndex(days int) int {
	if days < 0 {
		return -((-days + 6) / 7)
	}
	return days / 7
}

// mondayOf returns the Monday of the week containing date.
func mondayOf(date time.Time) time.Time {
	// time.Weekday counts from Sunday; shift so Monday is 0.
	offset := (int(date.Weekday()) + 6) % 7
	return DateOf(date).AddDate(0, 0, -offset)
}

// DayName returns the full English weekday name (Monday, Tuesday, ...).
func DayName(date time.Time) string {
	return date.Weekday().String()
}

// DayAbbr returns the three-letter weekday abbreviation (Mon, Tue, ...).
func DayAbbr(date time.Time) string {
	return date.Weekday().String()[:3]
}
