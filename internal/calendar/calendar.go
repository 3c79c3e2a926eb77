package calendar

import (
	"time"

	"github.com/username/signsheet/pkg/dateutil"
)

// Source provides holiday dates
type Source interface {
	// Holidays returns the holidays falling in the given month
	Holidays(year int, month time.Month) ([]dateutil.Date, error)
}

// ListSource serves a fixed list of dates, e.g. parsed from a flag
type ListSource struct {
	dates []dateutil.Date
}

// NewListSource creates a ListSource
func NewListSource(dates ...dateutil.Date) *ListSource {
	return &ListSource{dates: dates}
}

// Holidays returns the listed dates within the month
func (ls *ListSource) Holidays(year int, month time.Month) ([]dateutil.Date, error) {
	return inMonth(ls.dates, year, month), nil
}

func inMonth(dates []dateutil.Date, year int, month time.Month) []dateutil.Date {
	var out []dateutil.Date
	for _, d := range dates {
		if d.Year == year && d.Month == month {
			out = append(out, d)
		}
	}
	return out
}
