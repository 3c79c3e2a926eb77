// Package form provides the interactive terminal form for generating a sheet.
package form

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/username/signsheet/internal/generator"
	"github.com/username/signsheet/internal/render"
	"github.com/username/signsheet/internal/sheet"
)

// Generator produces and saves a sheet
type Generator interface {
	Generate(ctx context.Context, req *sheet.Request, outPath string) (*generator.Result, error)
}

type field int

const (
	fieldName field = iota
	fieldOffice
	fieldEmployee
	fieldMonth
	fieldYear
	fieldMorning
	fieldAfternoon
	fieldAfternoonDays
	fieldHolidays
	fieldNotes
	fieldOutput

	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldName:          "Name",
	fieldOffice:        "Office / unit",
	fieldEmployee:      "Employee ID",
	fieldMonth:         "Month",
	fieldYear:          "Year",
	fieldMorning:       "Morning (in,out)",
	fieldAfternoon:     "Afternoon (in,out)",
	fieldAfternoonDays: "Afternoon days (0=Mon … 6=Sun)",
	fieldHolidays:      "Holidays (YYYY-MM-DD, …)",
	fieldNotes:         "Notes (day:text, …)",
	fieldOutput:        "Output file",
}

type statusKind int

const (
	statusNone statusKind = iota
	statusSuccess
	statusWarning
	statusError
)

// Options configures a new form
type Options struct {
	// Defaults prefill the fields; Month and Year select the initial period
	Defaults sheet.Params
	// YearMin and YearMax bound the year spinner
	YearMin int
	YearMax int
	// DocumentsDir is where suggested output files go
	DocumentsDir string
	Theme        Theme
}

// Model is the bubbletea model of the form
type Model struct {
	ctx    context.Context
	gen    Generator
	inputs [fieldCount]textinput.Model
	focus  field

	month   int
	year    int
	yearMin int
	yearMax int
	locale  string
	docsDir string

	status     string
	statusKind statusKind
	width      int
	height     int
	styles     Styles
}

// New creates the form model
func New(ctx context.Context, gen Generator, opts Options) Model {
	d := opts.Defaults
	m := Model{
		ctx:     ctx,
		gen:     gen,
		month:   d.Month,
		year:    d.Year,
		yearMin: opts.YearMin,
		yearMax: opts.YearMax,
		locale:  d.Locale,
		docsDir: opts.DocumentsDir,
		styles:  opts.Theme.Styles(),
	}
	if m.month < 1 || m.month > 12 {
		m.month = int(time.Now().Month())
	}
	if m.yearMin > m.yearMax {
		m.yearMin, m.yearMax = m.yearMax, m.yearMin
	}
	m.year = clamp(m.year, m.yearMin, m.yearMax)

	values := map[field]string{
		fieldName:          d.Name,
		fieldOffice:        d.Office,
		fieldEmployee:      d.EmployeeID,
		fieldMorning:       d.Morning,
		fieldAfternoon:     d.Afternoon,
		fieldAfternoonDays: d.AfternoonDays,
		fieldHolidays:      d.Holidays,
		fieldNotes:         d.Notes,
	}
	placeholders := map[field]string{
		fieldMorning:   "06:30,13:00",
		fieldAfternoon: "16:00,19:00",
		fieldHolidays:  "e.g. 2025-09-11,2025-09-15",
		fieldNotes:     "e.g. 16:LEAVE,17:TRAINING",
		fieldOutput:    "ctrl+o suggests a file in " + m.docsDir,
	}

	for f := fieldName; f < fieldCount; f++ {
		if f == fieldMonth || f == fieldYear {
			continue
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		ti.Width = 44
		ti.Placeholder = placeholders[f]
		ti.SetValue(values[f])
		m.inputs[f] = ti
	}
	m.inputs[fieldName].Focus()

	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m, m.moveFocus(1)
		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		case "ctrl+o":
			m.suggestOutput()
			return m, nil
		case "ctrl+s":
			m.generate()
			return m, nil
		case "enter":
			if m.focus == fieldOutput {
				m.generate()
				return m, nil
			}
			return m, m.moveFocus(1)
		}

		if m.focus == fieldMonth || m.focus == fieldYear {
			m.spin(msg.String())
			return m, nil
		}
	}

	if m.focus == fieldMonth || m.focus == fieldYear {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	if m.focus != fieldMonth && m.focus != fieldYear {
		m.inputs[m.focus].Blur()
	}
	m.focus = field((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
	if m.focus == fieldMonth || m.focus == fieldYear {
		return nil
	}
	return m.inputs[m.focus].Focus()
}

// spin changes the month or year selection
func (m *Model) spin(key string) {
	delta := 0
	switch key {
	case "right", "l", "+":
		delta = 1
	case "left", "h", "-":
		delta = -1
	default:
		return
	}

	if m.focus == fieldMonth {
		m.month = (m.month-1+delta+12)%12 + 1
		return
	}
	m.year = clamp(m.year+delta, m.yearMin, m.yearMax)
}

// suggestOutput fills the output field with e.g. ~/Documents/SHEET-SEPTEMBER-2025.xlsx
func (m *Model) suggestOutput() {
	name := sheet.LabelsFor(m.locale).SuggestedFileName(time.Month(m.month), m.year, render.Extension)
	m.inputs[fieldOutput].SetValue(filepath.Join(m.docsDir, name))
	m.inputs[fieldOutput].CursorEnd()
}

func (m Model) params() sheet.Params {
	value := func(f field) string { return strings.TrimSpace(m.inputs[f].Value()) }
	return sheet.Params{
		Name:          value(fieldName),
		Office:        value(fieldOffice),
		EmployeeID:    value(fieldEmployee),
		Month:         m.month,
		Year:          m.year,
		Morning:       value(fieldMorning),
		Afternoon:     value(fieldAfternoon),
		AfternoonDays: value(fieldAfternoonDays),
		Holidays:      value(fieldHolidays),
		Notes:         value(fieldNotes),
		Locale:        m.locale,
	}
}

// generate runs synchronously; the form is blocked until the file is written
func (m *Model) generate() {
	p := m.params()
	out := strings.TrimSpace(m.inputs[fieldOutput].Value())
	if p.Name == "" || p.Office == "" || p.EmployeeID == "" || out == "" {
		m.setStatus(statusWarning, "Incomplete fields: fill in name, office, employee ID and choose an output file.")
		return
	}

	req, err := p.Request()
	if err != nil {
		m.setStatus(statusError, err.Error())
		return
	}

	res, err := m.gen.Generate(m.ctx, req, out)
	if err != nil {
		m.setStatus(statusError, fmt.Sprintf("An error occurred while generating the sheet:\n%v", err))
		return
	}
	m.setStatus(statusSuccess, fmt.Sprintf("Sheet generated successfully at:\n%s", res.Path))
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Schedule Sheet Generator"))
	b.WriteString("\n\n")

	for f := fieldName; f < fieldCount; f++ {
		label := m.styles.Label
		if f == m.focus {
			label = m.styles.Focused
		}
		b.WriteString(label.Render(fieldLabels[f]))
		b.WriteString("\n")
		b.WriteString(m.fieldView(f))
		b.WriteString("\n")
		if f == fieldEmployee || f == fieldYear || f == fieldNotes {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("tab/↑↓ move • ←/→ change month/year • ctrl+o suggest file • ctrl+s generate • esc quit"))

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.statusStyle().Render(m.status))
	}

	box := m.styles.Box.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) fieldView(f field) string {
	switch f {
	case fieldMonth:
		name := sheet.LabelsFor(m.locale).MonthName(time.Month(m.month))
		return m.styles.Value.Render("‹ " + name + " ›")
	case fieldYear:
		return m.styles.Value.Render("‹ " + strconv.Itoa(m.year) + " ›")
	default:
		return m.inputs[f].View()
	}
}

func (m Model) statusStyle() lipgloss.Style {
	switch m.statusKind {
	case statusSuccess:
		return m.styles.Success
	case statusWarning:
		return m.styles.Warning
	default:
		return m.styles.Error
	}
}

// Run shows the form until the user quits
func Run(ctx context.Context, gen Generator, opts Options) error {
	p := tea.NewProgram(New(ctx, gen, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("form failed: %w", err)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
