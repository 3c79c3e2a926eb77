package sheet

import (
	"sort"
	"time"

	"github.com/username/signsheet/pkg/dateutil"
)

// Grid layout: a leading day column followed by morning and afternoon
// blocks of four columns each (in, sign, out, sign).
const (
	ColDay = iota
	ColMorningIn
	ColMorningInSign
	ColMorningOut
	ColMorningOutSign
	ColAfternoonIn
	ColAfternoonInSign
	ColAfternoonOut
	ColAfternoonOutSign

	Columns
)

// HeaderRows is the number of header rows preceding the day rows
const HeaderRows = 2

// Dash is the placeholder for a time cell with no expected time
const Dash = "---"

// Schedule defaults used by every adapter
const (
	DefaultMorning       = "6:30,13:00"
	DefaultAfternoon     = "16:00,19:00"
	DefaultAfternoonDays = "1,3"
)

// TimePair holds expected entry and exit clock times
type TimePair struct {
	In  string `validate:"clock" field:"entry time"`
	Out string `validate:"clock" field:"exit time"`
}

// Schedule represents the expected daily times
type Schedule struct {
	Morning   TimePair `field:"morning"`
	Afternoon TimePair `field:"afternoon"`
	// AfternoonDays lists Monday-based weekday indices with an afternoon shift
	AfternoonDays []int `validate:"dive,min=0,max=6" field:"afternoon days"`
}

// HasAfternoon reports whether the weekday index receives an afternoon shift
func (s Schedule) HasAfternoon(weekday int) bool {
	for _, d := range s.AfternoonDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// HolidaySet is an unordered set of holiday dates
type HolidaySet map[dateutil.Date]struct{}

// NewHolidaySet creates a set from the given dates
func NewHolidaySet(dates ...dateutil.Date) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		set.Add(d)
	}
	return set
}

// Add inserts a date
func (s HolidaySet) Add(d dateutil.Date) {
	s[d] = struct{}{}
}

// Contains reports whether the date is a holiday
func (s HolidaySet) Contains(d dateutil.Date) bool {
	_, ok := s[d]
	return ok
}

// Sorted returns the dates in chronological order
func (s HolidaySet) Sorted() []dateutil.Date {
	out := make([]dateutil.Date, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Time().Before(out[j].Time())
	})
	return out
}

// DayNotes maps a day of month to a label replacing the day's times
type DayNotes map[int]string

// Lookup returns the note for a day; empty notes count as absent
func (n DayNotes) Lookup(day int) (string, bool) {
	text, ok := n[day]
	if !ok || text == "" {
		return "", false
	}
	return text, true
}

// Request is the complete input of one sheet generation
type Request struct {
	Name       string   `validate:"required" field:"name"`
	Office     string   `validate:"required" field:"office"`
	EmployeeID string   `validate:"required" field:"employee"`
	Month      int      `validate:"min=1,max=12" field:"month"`
	Year       int      `validate:"min=1,max=9999" field:"year"`
	Schedule   Schedule `field:"schedule"`
	Holidays   HolidaySet
	Notes      DayNotes
	Locale     string `validate:"omitempty,oneof=en es" field:"locale"`
}

// RowKind classifies a sheet row
type RowKind int

const (
	KindSpanHeader RowKind = iota + 1
	KindColumnHeader
	KindRegular
	KindWeekend
	KindHoliday
	KindNote
)

func (k RowKind) String() string {
	switch k {
	case KindSpanHeader:
		return "span-header"
	case KindColumnHeader:
		return "column-header"
	case KindRegular:
		return "regular"
	case KindWeekend:
		return "weekend"
	case KindHoliday:
		return "holiday"
	case KindNote:
		return "note"
	default:
		return "unknown"
	}
}

// Shade marks the background a renderer applies to a whole row
type Shade int

const (
	ShadeNone Shade = iota
	ShadeHeader
	ShadeWeekend
	ShadeHoliday
)

// Row is one rendered table row
type Row struct {
	Kind RowKind
	// Day is the day of month, 0 for header rows
	Day int
	// Weekday is the Monday-based weekday index, -1 for header rows
	Weekday int
	Cells   [Columns]string
	Shade   Shade
}

// Merge spans a header cell over FirstCol..LastCol of a row
type Merge struct {
	Row      int
	FirstCol int
	LastCol  int
}

// Field is a label/value pair of the identification block
type Field struct {
	Label string
	Value string
}

// Sheet is the complete, renderer-independent description of a document
type Sheet struct {
	Year   int
	Month  time.Month
	Labels Labels
	Title  string
	// Identity is laid out as two rows of two fields
	Identity [2][2]Field
	Rows     []Row
	Merges   []Merge
}

// DayRows returns the rows following the headers
func (s *Sheet) DayRows() []Row {
	return s.Rows[HeaderRows:]
}

// Count returns how many day rows have the given kind
func (s *Sheet) Count(kind RowKind) int {
	n := 0
	for _, r := range s.DayRows() {
		if r.Kind == kind {
			n++
		}
	}
	return n
}
