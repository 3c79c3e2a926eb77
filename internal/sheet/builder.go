// Package sheet turns a monthly request into the rows of a sign-in sheet.
//
// Build is a pure function: the same Request always yields the same Sheet.
// Rendering the Sheet into a file is left to a renderer.
package sheet

import (
	"fmt"
	"strconv"
	"time"

	"github.com/username/signsheet/pkg/dateutil"
)

// Build validates the request and produces the sheet: two header rows
// followed by one row per day of the month.
//
// Each day gets exactly one classification, first match wins:
// weekend, holiday, note, regular workday.
func Build(req *Request) (*Sheet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	labels := LabelsFor(req.Locale)
	month := time.Month(req.Month)
	days := dateutil.DaysIn(req.Year, month)

	s := &Sheet{
		Year:   req.Year,
		Month:  month,
		Labels: labels,
		Title:  labels.Title,
		Identity: [2][2]Field{
			{
				{Label: labels.Name, Value: req.Name},
				{Label: labels.Office, Value: req.Office},
			},
			{
				{Label: labels.Month, Value: fmt.Sprintf("%s %d", labels.MonthName(month), req.Year)},
				{Label: labels.Employee, Value: req.EmployeeID},
			},
		},
		Rows: make([]Row, 0, HeaderRows+days),
		Merges: []Merge{
			{Row: 0, FirstCol: ColMorningIn, LastCol: ColMorningOutSign},
			{Row: 0, FirstCol: ColAfternoonIn, LastCol: ColAfternoonOutSign},
		},
	}

	s.Rows = append(s.Rows, spanHeaderRow(labels), columnHeaderRow(labels))
	for day := 1; day <= days; day++ {
		date := dateutil.Date{Year: req.Year, Month: month, Day: day}
		s.Rows = append(s.Rows, dayRow(req, labels, date))
	}

	return s, nil
}

func spanHeaderRow(labels Labels) Row {
	row := Row{Kind: KindSpanHeader, Weekday: -1}
	row.Cells[ColMorningIn] = labels.Morning
	row.Cells[ColAfternoonIn] = labels.Afternoon
	return row
}

func columnHeaderRow(labels Labels) Row {
	return Row{
		Kind:    KindColumnHeader,
		Weekday: -1,
		Cells:   labels.Columns,
		Shade:   ShadeHeader,
	}
}

func dayRow(req *Request, labels Labels, date dateutil.Date) Row {
	weekday := dateutil.WeekdayIndex(date.Weekday())
	row := Row{Day: date.Day, Weekday: weekday}
	row.Cells[ColDay] = strconv.Itoa(date.Day)

	switch {
	case dateutil.IsWeekendIndex(weekday):
		label := labels.Saturday
		if weekday == 6 {
			label = labels.Sunday
		}
		row.Kind = KindWeekend
		row.Shade = ShadeWeekend
		fillBlocked(&row, label)

	case req.Holidays.Contains(date):
		row.Kind = KindHoliday
		row.Shade = ShadeHoliday
		fillBlocked(&row, labels.Holiday)

	default:
		if note, ok := req.Notes.Lookup(date.Day); ok {
			row.Kind = KindNote
			fillBlocked(&row, note)
			break
		}

		row.Kind = KindRegular
		row.Cells[ColMorningIn] = req.Schedule.Morning.In
		row.Cells[ColMorningOut] = req.Schedule.Morning.Out
		if req.Schedule.HasAfternoon(weekday) {
			row.Cells[ColAfternoonIn] = req.Schedule.Afternoon.In
			row.Cells[ColAfternoonOut] = req.Schedule.Afternoon.Out
		} else {
			row.Cells[ColAfternoonIn] = Dash
			row.Cells[ColAfternoonOut] = Dash
		}
	}

	return row
}

// fillBlocked writes the label in place of the morning entry and dashes
// over the remaining time cells. Signature cells stay blank.
func fillBlocked(row *Row, label string) {
	row.Cells[ColMorningIn] = label
	row.Cells[ColMorningOut] = Dash
	row.Cells[ColAfternoonIn] = Dash
	row.Cells[ColAfternoonOut] = Dash
}
