package acctreports

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a date with day-level granularity.
//
// Balances only care about the posting day, so the time of day a ledger stores
// is dropped when converting to a Date.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
//
// Out of range values are normalized the way time.Date does it, so that
// NewDate(2016, time.March, 0) is the last day of February 2016.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String format the date in ISO-8601 format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// StartOf returns the date of begining of a given period
func (d Date) StartOf(period Period) Date {
	switch period {
	case Monthly:
		return NewDate(d.Year(), d.Month(), 1)
	case Yearly:
		return NewDate(d.Year(), time.January, 1)
	default:
		panic("unknown period")
	}
}

// EndOf returns the date of end of a given period
func (d Date) EndOf(period Period) Date {
	switch period {
	case Monthly:
		return NewDate(d.Year(), d.Month()+1, 0) // last is next month on the day 0
	case Yearly:
		return NewDate(d.Year()+1, time.January, 0)
	default:
		panic("unknown period")
	}
}

// FirstDayOfMonth returns the first day of the month containing d.
func FirstDayOfMonth(d Date) Date { return d.StartOf(Monthly) }

// LastDayOfMonth returns the last day of the month containing d.
//
// time.Date normalization takes care of the month length, including leap
// Februaries and the century rule (1900 has 28 days, 2000 has 29).
func LastDayOfMonth(d Date) Date { return d.EndOf(Monthly) }

// DefaultBegin returns the begin date used when none is given: January 1st of the year of 'today'.
func DefaultBegin(today Date) Date { return today.StartOf(Yearly) }

// DefaultEnd returns the end date used when none is given: the last day of the month before 'today'.
func DefaultEnd(today Date) Date { return today.StartOf(Monthly).Add(-1) }

// ParseDate parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	// We use a slightly more permisive format for read, to support 2025-7-1 instead of 2025-07-01
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// ParseDateOr parses str, or returns def when str is empty.
func ParseDateOr(str string, def Date) (Date, error) {
	if strings.TrimSpace(str) == "" {
		return def, nil
	}
	return ParseDate(str)
}

// MarshalJSON writes the date as a "YYYY-MM-DD" string.
func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = Date{}
