// Package tray runs sheet generation from a system tray menu using the
// configured employee profile.
package tray

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/username/signsheet/internal/config"
	"github.com/username/signsheet/internal/generator"
	"github.com/username/signsheet/internal/render"
	"github.com/username/signsheet/internal/sheet"
)

// ErrBusy is returned when a generation is requested while another one runs
var ErrBusy = errors.New("sheet generation already in progress")

// Generator produces and saves a sheet
type Generator interface {
	Generate(ctx context.Context, req *sheet.Request, outPath string) (*generator.Result, error)
}

// App is the tray application
type App struct {
	cfg    *config.Config
	gen    Generator
	logger *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	running bool
	last    *generator.Result
}

// New creates a tray application
func New(cfg *config.Config, gen Generator, logger *zap.Logger) *App {
	return &App{
		cfg:    cfg,
		gen:    gen,
		logger: logger,
		now:    time.Now,
	}
}

// Period returns the month and year offset months away from now's month
func Period(now time.Time, offset int) (month, year int) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, offset, 0)
	return int(first.Month()), first.Year()
}

// OutputPath returns where the sheet of a month is saved
func (a *App) OutputPath(month, year int) string {
	labels := sheet.LabelsFor(a.cfg.Output.Locale)
	return filepath.Join(a.cfg.OutputDir(), labels.SuggestedFileName(time.Month(month), year, render.Extension))
}

// GenerateMonth generates the sheet offset months away from the current
// month. Only one generation runs at a time.
func (a *App) GenerateMonth(ctx context.Context, offset int) (*generator.Result, error) {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		a.logger.Warn("Generation already running, skipping")
		return nil, ErrBusy
	}
	a.running = true
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.running = false
		a.mu.Unlock()
	}()

	month, year := Period(a.now(), offset)
	req, err := a.cfg.Params(month, year).Request()
	if err != nil {
		a.logger.Error("Configured profile is invalid", zap.Error(err))
		return nil, err
	}

	res, err := a.gen.Generate(ctx, req, a.OutputPath(month, year))
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.last = res
	a.mu.Unlock()

	return res, nil
}

// Tooltip describes the last generated sheet
func (a *App) Tooltip() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.last == nil {
		return "Schedule sheet generator"
	}
	return fmt.Sprintf("Last sheet: %s", filepath.Base(a.last.Path))
}

// resultMessage returns the message box title and text for a generation outcome
func resultMessage(res *generator.Result, err error) (title, message string, failed bool) {
	switch {
	case errors.Is(err, ErrBusy):
		return "Schedule Sheet", "A sheet is already being generated, please wait.", false
	case err != nil:
		return "Schedule Sheet Error", fmt.Sprintf("An error occurred while generating the sheet:\n%v", err), true
	default:
		return "Schedule Sheet", fmt.Sprintf("Sheet generated successfully at:\n%s", res.Path), false
	}
}
