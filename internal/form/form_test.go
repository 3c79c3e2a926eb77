package form

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/signsheet/internal/generator"
	"github.com/username/signsheet/internal/sheet"
)

type fakeGenerator struct {
	calls int
	req   *sheet.Request
	out   string
	err   error
}

func (g *fakeGenerator) Generate(_ context.Context, req *sheet.Request, outPath string) (*generator.Result, error) {
	g.calls++
	g.req = req
	g.out = outPath
	if g.err != nil {
		return nil, g.err
	}
	return &generator.Result{Path: outPath}, nil
}

func testOptions() Options {
	d := sheet.DefaultParams(9, 2025)
	d.Name = "Benitez Wilson"
	d.Office = "CPI"
	d.EmployeeID = "32.746.256"
	d.Locale = sheet.LocaleEnglish
	return Options{
		Defaults:     d,
		YearMin:      2020,
		YearMax:      2030,
		DocumentsDir: "/home/user/Documents",
		Theme:        DefaultTheme(),
	}
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update must return a Model")
	}
	return m
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func focusOn(t *testing.T, m Model, f field) Model {
	t.Helper()
	for m.focus != f {
		m = press(t, m, key(tea.KeyTab))
	}
	return m
}

func TestNew_Prefill(t *testing.T) {
	m := New(context.Background(), &fakeGenerator{}, testOptions())

	assert.Equal(t, "Benitez Wilson", m.inputs[fieldName].Value())
	assert.Equal(t, sheet.DefaultMorning, m.inputs[fieldMorning].Value())
	assert.Equal(t, sheet.DefaultAfternoonDays, m.inputs[fieldAfternoonDays].Value())
	assert.Equal(t, 9, m.month)
	assert.Equal(t, 2025, m.year)
	assert.Equal(t, fieldName, m.focus)
}

func TestNew_ClampsYear(t *testing.T) {
	opts := testOptions()
	opts.Defaults.Year = 2050

	m := New(context.Background(), &fakeGenerator{}, opts)
	assert.Equal(t, 2030, m.year)
}

func TestUpdate_FocusWraps(t *testing.T) {
	m := New(context.Background(), &fakeGenerator{}, testOptions())

	m = press(t, m, key(tea.KeyShiftTab))
	assert.Equal(t, fieldOutput, m.focus)

	m = press(t, m, key(tea.KeyTab))
	assert.Equal(t, fieldName, m.focus)

	m = press(t, m, key(tea.KeyDown), key(tea.KeyDown))
	assert.Equal(t, fieldEmployee, m.focus)
}

func TestUpdate_MonthSpinnerWraps(t *testing.T) {
	m := focusOn(t, New(context.Background(), &fakeGenerator{}, testOptions()), fieldMonth)

	for i := 0; i < 4; i++ {
		m = press(t, m, key(tea.KeyRight))
	}
	assert.Equal(t, 1, m.month)

	m = press(t, m, key(tea.KeyLeft))
	assert.Equal(t, 12, m.month)
	assert.Contains(t, m.View(), "DECEMBER")
}

func TestUpdate_YearSpinnerIsBounded(t *testing.T) {
	m := focusOn(t, New(context.Background(), &fakeGenerator{}, testOptions()), fieldYear)

	for i := 0; i < 10; i++ {
		m = press(t, m, runes("+"))
	}
	assert.Equal(t, 2030, m.year)

	for i := 0; i < 20; i++ {
		m = press(t, m, runes("-"))
	}
	assert.Equal(t, 2020, m.year)
}

func TestUpdate_TypingEditsFocusedField(t *testing.T) {
	m := focusOn(t, New(context.Background(), &fakeGenerator{}, testOptions()), fieldNotes)

	m = press(t, m, runes("16:LEAVE"))
	assert.Equal(t, "16:LEAVE", m.inputs[fieldNotes].Value())
	assert.Equal(t, "Benitez Wilson", m.inputs[fieldName].Value())
}

func TestUpdate_SuggestOutput(t *testing.T) {
	m := New(context.Background(), &fakeGenerator{}, testOptions())

	m = press(t, m, key(tea.KeyCtrlO))
	assert.Equal(t, filepath.Join("/home/user/Documents", "SHEET-SEPTEMBER-2025.xlsx"), m.inputs[fieldOutput].Value())

	opts := testOptions()
	opts.Defaults.Locale = sheet.LocaleSpanish
	m = press(t, New(context.Background(), &fakeGenerator{}, opts), key(tea.KeyCtrlO))
	assert.Equal(t, filepath.Join("/home/user/Documents", "PLANILLA-SEPTIEMBRE-2025.xlsx"), m.inputs[fieldOutput].Value())
}

func TestGenerate_IncompleteFields(t *testing.T) {
	gen := &fakeGenerator{}
	m := New(context.Background(), gen, testOptions())

	m = press(t, m, key(tea.KeyCtrlS))

	assert.Equal(t, statusWarning, m.statusKind)
	assert.Contains(t, m.status, "Incomplete fields")
	assert.Zero(t, gen.calls)
}

func TestGenerate_InvalidTimes(t *testing.T) {
	gen := &fakeGenerator{}
	opts := testOptions()
	opts.Defaults.Morning = "0630-1300"
	m := press(t, New(context.Background(), gen, opts), key(tea.KeyCtrlO), key(tea.KeyCtrlS))

	assert.Equal(t, statusError, m.statusKind)
	assert.Contains(t, m.status, "morning")
	assert.Zero(t, gen.calls)
}

func TestGenerate_Success(t *testing.T) {
	gen := &fakeGenerator{}
	m := New(context.Background(), gen, testOptions())
	m = press(t, m, key(tea.KeyCtrlO))
	m = focusOn(t, m, fieldOutput)

	m = press(t, m, key(tea.KeyEnter))

	require.Equal(t, 1, gen.calls)
	assert.Equal(t, statusSuccess, m.statusKind)
	assert.Contains(t, m.status, "SHEET-SEPTEMBER-2025.xlsx")
	assert.Equal(t, 9, gen.req.Month)
	assert.Equal(t, 2025, gen.req.Year)
	assert.Equal(t, "32.746.256", gen.req.EmployeeID)
	assert.Contains(t, m.View(), "Sheet generated successfully")
}

func TestGenerate_GeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("permission denied")}
	m := press(t, New(context.Background(), gen, testOptions()), key(tea.KeyCtrlO), key(tea.KeyCtrlS))

	assert.Equal(t, statusError, m.statusKind)
	assert.Contains(t, m.status, "permission denied")
}

func TestUpdate_EnterAdvancesBeforeLastField(t *testing.T) {
	gen := &fakeGenerator{}
	m := press(t, New(context.Background(), gen, testOptions()), key(tea.KeyEnter))

	assert.Equal(t, fieldOffice, m.focus)
	assert.Zero(t, gen.calls)
}

func TestUpdate_Quit(t *testing.T) {
	m := New(context.Background(), &fakeGenerator{}, testOptions())

	_, cmd := m.Update(key(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_CentersInWindow(t *testing.T) {
	m := New(context.Background(), &fakeGenerator{}, testOptions())
	boxed := m.View()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 60})
	placed := next.(Model).View()

	assert.Contains(t, boxed, "Schedule Sheet Generator")
	assert.Greater(t, len(placed), len(boxed))
}
