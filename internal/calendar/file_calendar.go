package calendar

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/username/signsheet/pkg/dateutil"
)

// FileCalendar implements Source using a local text file
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	data     map[string][]dateutil.Date // key: "YYYY-MM"
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		data:     make(map[string][]dateutil.Date),
	}
}

// Load loads holidays from file.
//
// Format: one holiday per line, YYYY-MM-DD followed by an optional note
// that is only there for the reader.
// Blank lines and lines starting with # are ignored; malformed lines are
// logged and skipped.
//
//	# national holidays
//	2025-09-15 Independence day
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	data := make(map[string][]dateutil.Date)
	seen := make(map[dateutil.Date]bool)
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		date, err := dateutil.ParseDate(strings.Fields(line)[0])
		if err != nil {
			fc.logger.Warn("Skipping invalid holiday line",
				zap.String("file", fc.filePath),
				zap.Int("line", lineNo),
				zap.Error(err))
			continue
		}
		if seen[date] {
			continue
		}
		seen[date] = true

		key := monthKey(date.Year, date.Month)
		data[key] = append(data[key], date)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading holiday file: %w", err)
	}

	fc.data = data
	fc.logger.Info("Holiday file loaded",
		zap.String("file", fc.filePath),
		zap.Int("holidays", len(seen)),
		zap.Int("months", len(data)))

	return nil
}

// Holidays returns the holidays of the month; months absent from the file have none
func (fc *FileCalendar) Holidays(year int, month time.Month) ([]dateutil.Date, error) {
	return fc.data[monthKey(year, month)], nil
}

func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%d-%02d", year, month)
}
