package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
employee:
  name: Benitez Wilson
  office: CPI
  id: "32.746.256"
schedule:
  morning: "07:00,13:00"
  afternoon_days: "0,2,4"
holidays:
  list: "2025-09-15"
  file: ${HOLIDAY_DIR}/holidays.txt
output:
  locale: es
log:
  level: debug
`)
	t.Setenv("HOLIDAY_DIR", "/srv/signsheet")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg.ExpandEnvVars()

	if cfg.Employee.Name != "Benitez Wilson" || cfg.Employee.ID != "32.746.256" {
		t.Errorf("Employee = %+v", cfg.Employee)
	}
	if cfg.Schedule.Morning != "07:00,13:00" {
		t.Errorf("Schedule.Morning = %q", cfg.Schedule.Morning)
	}
	if cfg.Schedule.Afternoon != "16:00,19:00" {
		t.Errorf("Schedule.Afternoon = %q, want default", cfg.Schedule.Afternoon)
	}
	if cfg.Holidays.File != "/srv/signsheet/holidays.txt" {
		t.Errorf("Holidays.File = %q, want expanded path", cfg.Holidays.File)
	}
	if cfg.Form.YearMin != 2020 || cfg.Form.YearMax != 2100 {
		t.Errorf("Form years = %d..%d, want defaults", cfg.Form.YearMin, cfg.Form.YearMax)
	}

	p := cfg.Params(9, 2025)
	if p.Name != "Benitez Wilson" || p.AfternoonDays != "0,2,4" || p.Locale != "es" || p.Holidays != "2025-09-15" {
		t.Errorf("Params() = %+v", p)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Schedule.Morning != "6:30,13:00" || cfg.Schedule.AfternoonDays != "1,3" {
		t.Errorf("Schedule = %+v, want defaults", cfg.Schedule)
	}
	if cfg.Output.Locale != "en" || cfg.Log.Level != "info" {
		t.Errorf("Output/Log = %+v %+v", cfg.Output, cfg.Log)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "employee:\n  name: From File\n")
	t.Setenv("SIGNSHEET_EMPLOYEE_NAME", "From Env")
	t.Setenv("SIGNSHEET_SCHEDULE_AFTERNOON_DAYS", "2")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Employee.Name != "From Env" {
		t.Errorf("Employee.Name = %q, want env override", cfg.Employee.Name)
	}
	if cfg.Schedule.AfternoonDays != "2" {
		t.Errorf("Schedule.AfternoonDays = %q, want env override", cfg.Schedule.AfternoonDays)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() error = nil, want error for missing explicit config")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Output: OutputConfig{Locale: "en"},
			Form:   FormConfig{YearMin: 2020, YearMax: 2100},
			Log:    LogConfig{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"spanish upper case", func(c *Config) { c.Output.Locale = "ES" }, false},
		{"unknown locale", func(c *Config) { c.Output.Locale = "fr" }, true},
		{"inverted year range", func(c *Config) { c.Form.YearMin = 2101 }, true},
		{"year zero", func(c *Config) { c.Form.YearMin = 0 }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)

			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOutputDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_DOCUMENTS_DIR", "")

	c := &Config{Output: OutputConfig{Dir: "/srv/sheets"}}
	if got := c.OutputDir(); got != "/srv/sheets" {
		t.Errorf("OutputDir() = %q, want configured dir", got)
	}

	c.Output.Dir = ""
	if got := c.OutputDir(); got != home {
		t.Errorf("OutputDir() = %q, want home without Documents", got)
	}

	docs := filepath.Join(home, "Documents")
	if err := os.Mkdir(docs, 0o755); err != nil {
		t.Fatalf("Mkdir() error = %v", err)
	}
	if got := c.OutputDir(); got != docs {
		t.Errorf("OutputDir() = %q, want %q", got, docs)
	}

	t.Setenv("XDG_DOCUMENTS_DIR", "/xdg/docs")
	if got := c.OutputDir(); got != "/xdg/docs" {
		t.Errorf("OutputDir() = %q, want XDG dir", got)
	}
}
