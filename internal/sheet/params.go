package sheet

import (
	"strings"
)

// Params carries the raw, string-typed inputs collected by an adapter
// (command-line flags, form fields, config profile).
type Params struct {
	Name          string
	Office        string
	EmployeeID    string
	Month         int
	Year          int
	Morning       string
	Afternoon     string
	AfternoonDays string
	Holidays      string
	Notes         string
	Locale        string
}

// DefaultParams returns params with the default schedule for the given month
func DefaultParams(month, year int) Params {
	return Params{
		Month:         month,
		Year:          year,
		Morning:       DefaultMorning,
		Afternoon:     DefaultAfternoon,
		AfternoonDays: DefaultAfternoonDays,
		Locale:        LocaleEnglish,
	}
}

// Request parses and validates params into a Request.
//
// Time pairs and weekday lists are strict and fail with *FormatError;
// holiday and note lists are lenient. The assembled request is validated
// and failures are returned as *ValidationError.
func (p Params) Request() (*Request, error) {
	morning, err := ParseTimePair(p.Morning)
	if err != nil {
		return nil, withField(err, "morning")
	}
	afternoon, err := ParseTimePair(p.Afternoon)
	if err != nil {
		return nil, withField(err, "afternoon")
	}
	days, err := ParseWeekdays(p.AfternoonDays)
	if err != nil {
		return nil, withField(err, "afternoon days")
	}

	req := &Request{
		Name:       strings.TrimSpace(p.Name),
		Office:     strings.TrimSpace(p.Office),
		EmployeeID: strings.TrimSpace(p.EmployeeID),
		Month:      p.Month,
		Year:       p.Year,
		Schedule: Schedule{
			Morning:       morning,
			Afternoon:     afternoon,
			AfternoonDays: days,
		},
		Holidays: ParseDateList(p.Holidays),
		Notes:    ParseNotes(p.Notes),
		Locale:   strings.ToLower(strings.TrimSpace(p.Locale)),
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}
