package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/username/signsheet/pkg/dateutil"
)

// ParseDateList parses comma-separated YYYY-MM-DD dates.
// Malformed tokens are skipped so one typo does not abort a whole run.
func ParseDateList(text string) HolidaySet {
	out := make(HolidaySet)
	if strings.TrimSpace(text) == "" {
		return out
	}

	for _, tok := range strings.Split(text, ",") {
		d, err := dateutil.ParseDate(tok)
		if err != nil {
			continue
		}
		out.Add(d)
	}
	return out
}

// ParseNotes parses comma-separated "day:text" tokens, e.g. "16:LICENCIA,17:CAPACITACION".
// Tokens without a colon or with a non-numeric day are skipped.
func ParseNotes(text string) DayNotes {
	out := make(DayNotes)
	if strings.TrimSpace(text) == "" {
		return out
	}

	for _, tok := range strings.Split(text, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(tok), ":")
		if !found {
			continue
		}
		day, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			continue
		}
		out[day] = strings.TrimSpace(value)
	}
	return out
}

// ParseTimePair parses "HH:MM,HH:MM" into entry and exit times.
// Tokens are returned trimmed but otherwise as written ("6:30" stays "6:30").
func ParseTimePair(text string) (TimePair, error) {
	if strings.TrimSpace(text) == "" {
		return TimePair{}, &FormatError{
			Token:   text,
			Message: "time pair is required, use HH:MM,HH:MM (e.g. 06:30,13:00)",
		}
	}

	parts := strings.Split(text, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) != 2 || !strings.Contains(parts[0], ":") || !strings.Contains(parts[1], ":") {
		return TimePair{}, &FormatError{
			Token:   text,
			Message: fmt.Sprintf("invalid time format %q, use HH:MM,HH:MM (e.g. 06:30,13:00)", text),
		}
	}

	for _, hhmm := range parts {
		if err := checkClock(hhmm); err != nil {
			return TimePair{}, err
		}
	}

	return TimePair{In: parts[0], Out: parts[1]}, nil
}

// ParseWeekdays parses comma-separated Monday-based weekday indices (0..6).
// Blank entries are ignored, duplicates collapsed.
func ParseWeekdays(text string) ([]int, error) {
	out := []int{}
	seen := make(map[int]bool)

	for _, tok := range strings.Split(text, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &FormatError{
				Token:   tok,
				Message: fmt.Sprintf("invalid weekday %q, use numbers 0 (Monday) to 6 (Sunday)", tok),
			}
		}
		if n < 0 || n > 6 {
			return nil, &FormatError{
				Token:   tok,
				Message: fmt.Sprintf("weekday out of range: %s", tok),
			}
		}
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out, nil
}

// FormatWeekdays is the inverse of ParseWeekdays
func FormatWeekdays(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

func checkClock(hhmm string) error {
	segments := strings.Split(hhmm, ":")
	if len(segments) != 2 || !isDigits(segments[0]) || !isDigits(segments[1]) {
		return &FormatError{Token: hhmm, Message: fmt.Sprintf("invalid time: %s", hhmm)}
	}

	hour, errHour := strconv.Atoi(segments[0])
	minute, errMinute := strconv.Atoi(segments[1])
	if errHour != nil || errMinute != nil || hour > 23 || minute > 59 {
		return &FormatError{Token: hhmm, Message: fmt.Sprintf("time out of range: %s", hhmm)}
	}
	return nil
}

func validClock(hhmm string) bool {
	return checkClock(hhmm) == nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
