package sheet

import (
	"fmt"
	"strings"
	"time"
)

// Supported locales
const (
	LocaleEnglish = "en"
	LocaleSpanish = "es"
)

// Labels holds every fixed text printed on a sheet
type Labels struct {
	Title string

	Name     string
	Office   string
	Month    string
	Employee string

	Morning   string
	Afternoon string
	Columns   [Columns]string

	Saturday string
	Sunday   string
	Holiday  string

	Months [12]string

	// FilePrefix starts suggested output file names
	FilePrefix string
}

var englishLabels = Labels{
	Title:     "PERSONAL SCHEDULE SHEET",
	Name:      "NAME: ",
	Office:    "Office: ",
	Month:     "Month: ",
	Employee:  "Employee: ",
	Morning:   "MORNING",
	Afternoon: "AFTERNOON",
	Columns:   [Columns]string{"DAY", "IN", "SIGN", "OUT", "SIGN", "IN", "SIGN", "OUT", "SIGN"},
	Saturday:  "SATURDAY",
	Sunday:    "SUNDAY",
	Holiday:   "HOLIDAY",
	Months: [12]string{
		"JANUARY", "FEBRUARY", "MARCH", "APRIL", "MAY", "JUNE",
		"JULY", "AUGUST", "SEPTEMBER", "OCTOBER", "NOVEMBER", "DECEMBER",
	},
	FilePrefix: "SHEET",
}

var spanishLabels = Labels{
	Title:     "PLANILLAS PERSONAL DE HORARIOS",
	Name:      "APELLIDO Y NOMBRE: ",
	Office:    "Oficina: ",
	Month:     "Mes: ",
	Employee:  "Empleado: ",
	Morning:   "MAÑANA",
	Afternoon: "TARDE",
	Columns:   [Columns]string{"DIAS", "ENTRADA", "FIRMA", "SALIDA", "FIRMA", "ENTRADA", "FIRMA", "SALIDA", "FIRMA"},
	Saturday:  "SÁBADO",
	Sunday:    "DOMINGO",
	Holiday:   "FERIADO",
	Months: [12]string{
		"ENERO", "FEBRERO", "MARZO", "ABRIL", "MAYO", "JUNIO",
		"JULIO", "AGOSTO", "SEPTIEMBRE", "OCTUBRE", "NOVIEMBRE", "DICIEMBRE",
	},
	FilePrefix: "PLANILLA",
}

// LabelsFor returns the labels of a locale, English when unknown or empty
func LabelsFor(locale string) Labels {
	if strings.EqualFold(strings.TrimSpace(locale), LocaleSpanish) {
		return spanishLabels
	}
	return englishLabels
}

// MonthName returns the upper-case month name, empty when out of range
func (l Labels) MonthName(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return l.Months[month-1]
}

// SuggestedFileName returns e.g. "SHEET-SEPTEMBER-2025.xlsx"
func (l Labels) SuggestedFileName(month time.Month, year int, ext string) string {
	return fmt.Sprintf("%s-%s-%d%s", l.FilePrefix, l.MonthName(month), year, ext)
}
