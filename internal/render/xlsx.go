// Package render materializes a sheet.Sheet into a spreadsheet document.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/username/signsheet/internal/sheet"
)

// Extension of the files produced by XLSX
const Extension = ".xlsx"

// Document layout (1-based worksheet rows)
const (
	titleRow    = 1
	identityRow = 2
	gridTop     = 5
)

// Palette holds the fill colors used by the renderer, as hex RGB
type Palette struct {
	Header  string
	Weekend string
	Holiday string
	Border  string
}

// DefaultPalette returns the colors of the printed sheet
func DefaultPalette() Palette {
	return Palette{
		Header:  "EFEFEF",
		Weekend: "F8F8F8",
		Holiday: "FFF2CC",
		Border:  "000000",
	}
}

// XLSX renders sheets as Excel workbooks
type XLSX struct {
	palette Palette
}

// NewXLSX creates an XLSX renderer; empty palette colors fall back to defaults
func NewXLSX(palette Palette) *XLSX {
	def := DefaultPalette()
	if palette.Header == "" {
		palette.Header = def.Header
	}
	if palette.Weekend == "" {
		palette.Weekend = def.Weekend
	}
	if palette.Holiday == "" {
		palette.Holiday = def.Holiday
	}
	if palette.Border == "" {
		palette.Border = def.Border
	}
	return &XLSX{palette: palette}
}

// Render writes the sheet to path and returns the path written.
// A path without extension gets ".xlsx". Either the complete file
// appears or nothing does.
func (x *XLSX) Render(s *sheet.Sheet, path string) (string, error) {
	path, err := OutputPath(path)
	if err != nil {
		return "", err
	}

	wb, err := x.workbook(s)
	if err != nil {
		return "", err
	}
	defer wb.file.Close()

	if err := writeAtomic(wb.file, path); err != nil {
		return "", err
	}
	return path, nil
}

// OutputPath normalizes the output file name
func OutputPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("output path is required")
	}

	switch ext := filepath.Ext(path); {
	case ext == "":
		return path + Extension, nil
	case strings.EqualFold(ext, Extension):
		return path, nil
	default:
		return "", fmt.Errorf("unsupported output format %q, use %s", ext, Extension)
	}
}

type styles struct {
	title    int
	identity int
	span     int
	header   int
	cell     int
	weekend  int
	holiday  int
}

type workbook struct {
	file      *excelize.File
	sheetName string
	styles    styles
}

func (x *XLSX) workbook(s *sheet.Sheet) (*workbook, error) {
	f := excelize.NewFile()
	wb := &workbook{
		file:      f,
		sheetName: fmt.Sprintf("%s %d", s.Labels.MonthName(s.Month), s.Year),
	}

	if err := f.SetSheetName("Sheet1", wb.sheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	steps := []func(*sheet.Sheet) error{
		wb.newStyles(x.palette),
		wb.writeTitle,
		wb.writeIdentity,
		wb.writeGrid,
		wb.setLayout,
	}
	for _, step := range steps {
		if err := step(s); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return wb, nil
}

func (wb *workbook) newStyles(p Palette) func(*sheet.Sheet) error {
	return func(*sheet.Sheet) error {
		border := []excelize.Border{
			{Type: "left", Color: p.Border, Style: 1},
			{Type: "top", Color: p.Border, Style: 1},
			{Type: "right", Color: p.Border, Style: 1},
			{Type: "bottom", Color: p.Border, Style: 1},
		}
		center := &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}
		fill := func(color string) excelize.Fill {
			return excelize.Fill{Type: "pattern", Color: []string{"#" + color}, Pattern: 1}
		}

		defs := []struct {
			id    *int
			style *excelize.Style
		}{
			{&wb.styles.title, &excelize.Style{
				Font:      &excelize.Font{Bold: true, Size: 14},
				Alignment: &excelize.Alignment{Horizontal: "center"},
			}},
			{&wb.styles.identity, &excelize.Style{
				Font:      &excelize.Font{Size: 11},
				Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
			}},
			{&wb.styles.span, &excelize.Style{
				Border:    border,
				Font:      &excelize.Font{Bold: true},
				Alignment: center,
			}},
			{&wb.styles.header, &excelize.Style{
				Border:    border,
				Font:      &excelize.Font{Bold: true},
				Fill:      fill(p.Header),
				Alignment: center,
			}},
			{&wb.styles.cell, &excelize.Style{
				Border:    border,
				Alignment: center,
			}},
			{&wb.styles.weekend, &excelize.Style{
				Border:    border,
				Fill:      fill(p.Weekend),
				Alignment: center,
			}},
			{&wb.styles.holiday, &excelize.Style{
				Border:    border,
				Fill:      fill(p.Holiday),
				Alignment: center,
			}},
		}

		for _, d := range defs {
			id, err := wb.file.NewStyle(d.style)
			if err != nil {
				return fmt.Errorf("failed to create cell style: %w", err)
			}
			*d.id = id
		}
		return nil
	}
}

func (wb *workbook) writeTitle(s *sheet.Sheet) error {
	first, last := cellName(0, titleRow), cellName(sheet.Columns-1, titleRow)
	if err := wb.file.SetCellValue(wb.sheetName, first, s.Title); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}
	if err := wb.file.MergeCell(wb.sheetName, first, last); err != nil {
		return fmt.Errorf("failed to merge title: %w", err)
	}
	return wb.file.SetCellStyle(wb.sheetName, first, last, wb.styles.title)
}

// writeIdentity lays the 2x2 identification block over columns A-E and F-I
func (wb *workbook) writeIdentity(s *sheet.Sheet) error {
	spans := [2][2]int{{0, 4}, {5, sheet.Columns - 1}}

	for r, fields := range s.Identity {
		row := identityRow + r
		for c, field := range fields {
			first, last := cellName(spans[c][0], row), cellName(spans[c][1], row)
			runs := []excelize.RichTextRun{
				{Text: field.Label, Font: &excelize.Font{Bold: true, Size: 11}},
				{Text: field.Value, Font: &excelize.Font{Size: 11}},
			}
			if err := wb.file.SetCellRichText(wb.sheetName, first, runs); err != nil {
				return fmt.Errorf("failed to write %s: %w", strings.TrimSpace(field.Label), err)
			}
			if err := wb.file.MergeCell(wb.sheetName, first, last); err != nil {
				return fmt.Errorf("failed to merge identification cell: %w", err)
			}
			if err := wb.file.SetCellStyle(wb.sheetName, first, last, wb.styles.identity); err != nil {
				return fmt.Errorf("failed to style identification cell: %w", err)
			}
		}
	}
	return nil
}

func (wb *workbook) writeGrid(s *sheet.Sheet) error {
	for i, row := range s.Rows {
		excelRow := gridTop + i
		for col, text := range row.Cells {
			if text == "" {
				continue
			}
			if err := wb.file.SetCellStr(wb.sheetName, cellName(col, excelRow), text); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i, err)
			}
		}

		style := wb.rowStyle(row)
		if err := wb.file.SetCellStyle(wb.sheetName, cellName(0, excelRow), cellName(sheet.Columns-1, excelRow), style); err != nil {
			return fmt.Errorf("failed to style row %d: %w", i, err)
		}
	}

	for _, m := range s.Merges {
		row := gridTop + m.Row
		if err := wb.file.MergeCell(wb.sheetName, cellName(m.FirstCol, row), cellName(m.LastCol, row)); err != nil {
			return fmt.Errorf("failed to merge header: %w", err)
		}
	}
	return nil
}

func (wb *workbook) rowStyle(row sheet.Row) int {
	if row.Kind == sheet.KindSpanHeader {
		return wb.styles.span
	}
	switch row.Shade {
	case sheet.ShadeHeader:
		return wb.styles.header
	case sheet.ShadeWeekend:
		return wb.styles.weekend
	case sheet.ShadeHoliday:
		return wb.styles.holiday
	default:
		return wb.styles.cell
	}
}

// setLayout sets column widths and an A4 portrait page that fits one page wide
func (wb *workbook) setLayout(*sheet.Sheet) error {
	if err := wb.file.SetColWidth(wb.sheetName, "A", "A", 7); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := wb.file.SetColWidth(wb.sheetName, "B", "I", 11); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	size := 9 // A4
	orientation := "portrait"
	fitWidth, fitHeight := 1, 1
	if err := wb.file.SetPageLayout(wb.sheetName, &excelize.PageLayoutOptions{
		Size:        &size,
		Orientation: &orientation,
		FitToWidth:  &fitWidth,
		FitToHeight: &fitHeight,
	}); err != nil {
		return fmt.Errorf("failed to set page layout: %w", err)
	}

	fitToPage := true
	if err := wb.file.SetSheetProps(wb.sheetName, &excelize.SheetPropsOptions{FitToPage: &fitToPage}); err != nil {
		return fmt.Errorf("failed to set sheet properties: %w", err)
	}
	return nil
}

// writeAtomic writes to a temporary file next to path and renames it into place
func writeAtomic(f *excelize.File, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".signsheet-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	if err := f.Write(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	tmpName = ""
	return nil
}

// cellName converts a 0-based column and 1-based row to an A1 reference
func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
