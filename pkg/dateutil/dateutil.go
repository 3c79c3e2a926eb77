package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar date without time or location, usable as a map key
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a Date and reports whether it exists in the proleptic Gregorian calendar
func NewDate(year int, month time.Month, day int) (Date, bool) {
	if year < MinYear || year > MaxYear || month < time.January || month > time.December {
		return Date{}, false
	}
	if day < 1 || day > DaysIn(year, month) {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

// DateOf returns the calendar date of t in its own location
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Weekday returns the day of week of the date
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Year bounds accepted for sheet generation
const (
	MinYear = 1
	MaxYear = 9999
)

// DaysIn returns the number of days in the given month
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekdayIndex converts a weekday to a Monday-based index (0=Monday .. 6=Sunday)
func WeekdayIndex(weekday time.Weekday) int {
	return (int(weekday) + 6) % 7
}

// IsWeekendIndex returns true for Saturday (5) and Sunday (6)
func IsWeekendIndex(index int) bool {
	return index >= 5
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}

// ParseDate parses a YYYY-MM-DD string.
// Segments may omit zero padding ("2025-9-1"); the date must exist.
func ParseDate(dateStr string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(dateStr), "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", dateStr)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
		}
		nums[i] = n
	}

	d, ok := NewDate(nums[0], time.Month(nums[1]), nums[2])
	if !ok {
		return Date{}, fmt.Errorf("invalid date %q: no such day", dateStr)
	}
	return d, nil
}
