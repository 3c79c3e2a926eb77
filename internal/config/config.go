package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/username/signsheet/internal/sheet"
)

// EnvPrefix prefixes environment overrides, e.g. SIGNSHEET_EMPLOYEE_NAME
const EnvPrefix = "SIGNSHEET"

// Config represents application configuration
type Config struct {
	Employee EmployeeConfig `mapstructure:"employee"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Output   OutputConfig   `mapstructure:"output"`
	Form     FormConfig     `mapstructure:"form"`
	Log      LogConfig      `mapstructure:"log"`
}

// EmployeeConfig holds the identification printed on every sheet
type EmployeeConfig struct {
	Name   string `mapstructure:"name"`
	Office string `mapstructure:"office"`
	ID     string `mapstructure:"id"`
}

// ScheduleConfig holds the expected times, in the same text form as the flags
type ScheduleConfig struct {
	Morning       string `mapstructure:"morning"`        // "HH:MM,HH:MM"
	Afternoon     string `mapstructure:"afternoon"`      // "HH:MM,HH:MM"
	AfternoonDays string `mapstructure:"afternoon_days"` // "1,3" (0=Monday)
}

// HolidaysConfig represents holiday configuration
type HolidaysConfig struct {
	List string `mapstructure:"list"` // "YYYY-MM-DD,YYYY-MM-DD"
	File string `mapstructure:"file"` // one YYYY-MM-DD per line
}

// OutputConfig represents document output configuration
type OutputConfig struct {
	Dir    string `mapstructure:"dir"` // Default directory for suggested file names
	Locale string `mapstructure:"locale"`
}

// FormConfig represents interactive form configuration
type FormConfig struct {
	ThemeFile string `mapstructure:"theme_file"`
	YearMin   int    `mapstructure:"year_min"`
	YearMax   int    `mapstructure:"year_max"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file, environment and defaults.
//
// An explicitly given configPath must exist; without one the usual
// locations are searched and a missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.signsheet")
		v.AddConfigPath("/etc/signsheet")
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Every key needs a default so AutomaticEnv can override it on Unmarshal
	v.SetDefault("employee.name", "")
	v.SetDefault("employee.office", "")
	v.SetDefault("employee.id", "")
	v.SetDefault("schedule.morning", sheet.DefaultMorning)
	v.SetDefault("schedule.afternoon", sheet.DefaultAfternoon)
	v.SetDefault("schedule.afternoon_days", sheet.DefaultAfternoonDays)
	v.SetDefault("holidays.list", "")
	v.SetDefault("holidays.file", "")
	v.SetDefault("output.dir", "")
	v.SetDefault("output.locale", sheet.LocaleEnglish)
	v.SetDefault("form.theme_file", "")
	v.SetDefault("form.year_min", 2020)
	v.SetDefault("form.year_max", 2100)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output.Locale) {
	case sheet.LocaleEnglish, sheet.LocaleSpanish:
	default:
		return fmt.Errorf("output.locale must be '%s' or '%s', got '%s'",
			sheet.LocaleEnglish, sheet.LocaleSpanish, c.Output.Locale)
	}

	if c.Form.YearMin < 1 || c.Form.YearMax > 9999 || c.Form.YearMin > c.Form.YearMax {
		return fmt.Errorf("form.year_min and form.year_max must form a range within 1..9999, got %d..%d",
			c.Form.YearMin, c.Form.YearMax)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level)
	}

	return nil
}

// Params returns sheet parameters prefilled from the configured profile
func (c *Config) Params(month, year int) sheet.Params {
	return sheet.Params{
		Name:          c.Employee.Name,
		Office:        c.Employee.Office,
		EmployeeID:    c.Employee.ID,
		Month:         month,
		Year:          year,
		Morning:       c.Schedule.Morning,
		Afternoon:     c.Schedule.Afternoon,
		AfternoonDays: c.Schedule.AfternoonDays,
		Holidays:      c.Holidays.List,
		Locale:        c.Output.Locale,
	}
}

// ExpandEnvVars expands environment variables in path settings
func (c *Config) ExpandEnvVars() {
	c.Holidays.File = os.ExpandEnv(c.Holidays.File)
	c.Output.Dir = os.ExpandEnv(c.Output.Dir)
	c.Form.ThemeFile = os.ExpandEnv(c.Form.ThemeFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}

// OutputDir returns the directory for suggested output files: output.dir
// when set, else the user's documents directory, else the home directory
func (c *Config) OutputDir() string {
	if c.Output.Dir != "" {
		return c.Output.Dir
	}
	if dir := os.Getenv("XDG_DOCUMENTS_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	docs := filepath.Join(home, "Documents")
	if info, err := os.Stat(docs); err == nil && info.IsDir() {
		return docs
	}
	return home
}
