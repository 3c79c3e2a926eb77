package calendar

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/username/signsheet/pkg/dateutil"
)

func writeHolidayFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holidays.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write holiday file: %v", err)
	}
	return path
}

func TestFileCalendar_Load(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	path := writeHolidayFile(t, `# national holidays
2025-09-15 Independence day
2025-09-15 duplicate

not-a-date Broken line
2025-02-30 Impossible
2025-10-12	Columbus day
2025-09-01
`)

	cal := NewFileCalendar(path, logger)
	if err := cal.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name  string
		year  int
		month time.Month
		want  []dateutil.Date
	}{
		{
			name:  "September 2025",
			year:  2025,
			month: time.September,
			want: []dateutil.Date{
				{Year: 2025, Month: time.September, Day: 15},
				{Year: 2025, Month: time.September, Day: 1},
			},
		},
		{
			name:  "October 2025 with tab separator",
			year:  2025,
			month: time.October,
			want:  []dateutil.Date{{Year: 2025, Month: time.October, Day: 12}},
		},
		{
			name:  "month not in file",
			year:  2025,
			month: time.February,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cal.Holidays(tt.year, tt.month)
			if err != nil {
				t.Fatalf("Holidays() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Holidays(%d, %v) = %v, want %v", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestFileCalendar_LoadMissingFile(t *testing.T) {
	cal := NewFileCalendar(filepath.Join(t.TempDir(), "missing.txt"), zap.NewNop())

	if err := cal.Load(); err == nil {
		t.Fatal("Load() error = nil, want error for missing file")
	}
}

type failingSource struct{}

func (failingSource) Holidays(int, time.Month) ([]dateutil.Date, error) {
	return nil, errors.New("unavailable")
}

func TestCompositeCalendar_Union(t *testing.T) {
	sep15 := dateutil.Date{Year: 2025, Month: time.September, Day: 15}
	sep16 := dateutil.Date{Year: 2025, Month: time.September, Day: 16}
	oct1 := dateutil.Date{Year: 2025, Month: time.October, Day: 1}

	cc := NewCompositeCalendar(zap.NewNop(),
		NewListSource(sep15, oct1),
		failingSource{},
	)
	cc.Add(NewListSource(sep15, sep16))

	got, err := cc.Holidays(2025, time.September)
	if err != nil {
		t.Fatalf("Holidays() error = %v", err)
	}

	want := []dateutil.Date{sep15, sep16}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Holidays() = %v, want %v", got, want)
	}
}

func TestCompositeCalendar_AllFailed(t *testing.T) {
	cc := NewCompositeCalendar(zap.NewNop(), failingSource{})

	if _, err := cc.Holidays(2025, time.September); err == nil {
		t.Fatal("Holidays() error = nil, want error when every source fails")
	}
}

func TestCompositeCalendar_Empty(t *testing.T) {
	got, err := NewCompositeCalendar(zap.NewNop()).Holidays(2025, time.September)
	if err != nil || len(got) != 0 {
		t.Errorf("Holidays() = %v, %v; want empty, nil", got, err)
	}
}
