package calendar

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/username/signsheet/pkg/dateutil"
)

// CompositeCalendar merges the holidays of several sources.
// A failing source is logged and skipped as long as another source answers.
type CompositeCalendar struct {
	sources []Source
	logger  *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(logger *zap.Logger, sources ...Source) *CompositeCalendar {
	return &CompositeCalendar{
		sources: sources,
		logger:  logger,
	}
}

// Add appends a source
func (cc *CompositeCalendar) Add(source Source) {
	cc.sources = append(cc.sources, source)
}

// Holidays returns the union of all sources' holidays for the month
func (cc *CompositeCalendar) Holidays(year int, month time.Month) ([]dateutil.Date, error) {
	var out []dateutil.Date
	seen := make(map[dateutil.Date]bool)
	var lastErr error
	answered := 0

	for i, src := range cc.sources {
		dates, err := src.Holidays(year, month)
		if err != nil {
			cc.logger.Warn("Holiday source failed, skipping",
				zap.Int("source", i),
				zap.Int("year", year),
				zap.Int("month", int(month)),
				zap.Error(err))
			lastErr = err
			continue
		}
		answered++

		for _, d := range dates {
			if !seen[d] {
				seen[d] = true
				out = append(out, d)
			}
		}
	}

	if answered == 0 && lastErr != nil {
		return nil, fmt.Errorf("all holiday sources failed: %w", lastErr)
	}
	return out, nil
}
