package academic

import (
	"errors"
	"fmt"
	"time"
)

// NoPeriodFoundError is returned by Classify when the date precedes
// every period in the table.
type NoPeriodFoundError struct {
	Date     time.Time
	Earliest time.Time
}

func (e *NoPeriodFoundError) Error() string {
	return fmt.Sprintf("no period found for %s: table starts at %s",
		FormatDate(e.Date), FormatDate(e.Earliest))
}

// OutOfRangeError is returned when a semester has no week name for the
// elapsed week index. It means the week-name list needs extending.
type OutOfRangeError struct {
	Date  time.Time
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("week index %d for %s is outside the %d named semester weeks",
		e.Index, FormatDate(e.Date), e.Len)
}

// ConfigurationError reports an empty or malformed period table.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid period table: " + e.Reason
}

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// IsNoPeriodFound checks if an error is a NoPeriodFoundError.
func IsNoPeriodFound(err error) bool {
	var target *NoPeriodFoundError
	return errors.As(err, &target)
}

// IsOutOfRange checks if an error is an OutOfRangeError.
func IsOutOfRange(err error) bool {
	var target *OutOfRangeError
	return errors.As(err, &target)
}

// IsConfiguration checks if an error is a ConfigurationError.
func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}
