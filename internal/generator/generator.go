package generator

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/username/signsheet/internal/calendar"
	"github.com/username/signsheet/internal/sheet"
)

// Renderer materializes a sheet into a file and returns the path written
type Renderer interface {
	Render(s *sheet.Sheet, path string) (string, error)
}

// Result summarizes one generated sheet
type Result struct {
	Path     string
	DayRows  int
	Regular  int
	Weekend  int
	Holidays int
	Notes    int
	Duration time.Duration
}

// Generator builds sheets and hands them to a renderer
type Generator struct {
	renderer Renderer
	holidays []calendar.Source
	logger   *zap.Logger
}

// New creates a Generator. Extra holiday sources (e.g. a holiday file)
// are merged with the request's own holidays for the requested month.
func New(renderer Renderer, logger *zap.Logger, holidays ...calendar.Source) *Generator {
	return &Generator{
		renderer: renderer,
		holidays: holidays,
		logger:   logger,
	}
}

// Generate builds the sheet for req and saves it at outPath
func (g *Generator) Generate(ctx context.Context, req *sheet.Request, outPath string) (*Result, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.logger.Info("Generating sheet",
		zap.String("employee", req.EmployeeID),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.String("out", outPath))

	merged, err := g.withHolidays(req)
	if err != nil {
		return nil, err
	}

	s, err := sheet.Build(merged)
	if err != nil {
		return nil, err
	}

	path, err := g.renderer.Render(s, outPath)
	if err != nil {
		g.logger.Error("Failed to render sheet", zap.String("out", outPath), zap.Error(err))
		return nil, fmt.Errorf("failed to save sheet: %w", err)
	}

	result := &Result{
		Path:     path,
		DayRows:  len(s.DayRows()),
		Regular:  s.Count(sheet.KindRegular),
		Weekend:  s.Count(sheet.KindWeekend),
		Holidays: s.Count(sheet.KindHoliday),
		Notes:    s.Count(sheet.KindNote),
		Duration: time.Since(start),
	}

	g.logger.Info("Sheet saved",
		zap.String("path", result.Path),
		zap.Int("days", result.DayRows),
		zap.Int("regular", result.Regular),
		zap.Int("weekend", result.Weekend),
		zap.Int("holidays", result.Holidays),
		zap.Int("notes", result.Notes),
		zap.Duration("duration", result.Duration))

	return result, nil
}

// withHolidays returns a copy of req whose holiday set also holds the
// month's holidays from the extra sources
func (g *Generator) withHolidays(req *sheet.Request) (*sheet.Request, error) {
	if len(g.holidays) == 0 {
		return req, nil
	}

	sources := append([]calendar.Source{calendar.NewListSource(req.Holidays.Sorted()...)}, g.holidays...)
	cal := calendar.NewCompositeCalendar(g.logger, sources...)

	dates, err := cal.Holidays(req.Year, time.Month(req.Month))
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}

	merged := *req
	merged.Holidays = sheet.NewHolidaySet(dates...)
	g.logger.Debug("Holidays merged",
		zap.Int("from_request", len(req.Holidays)),
		zap.Int("in_month", len(dates)))
	return &merged, nil
}
