package form

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ThemeFileName is looked up under a "styles" directory when no theme file is configured
const ThemeFileName = "theme.yaml"

// Theme holds the form colors. Any lipgloss color string works
// ("#8BC34A", "212").
type Theme struct {
	Accent  string `yaml:"accent"`
	Text    string `yaml:"text"`
	Muted   string `yaml:"muted"`
	Border  string `yaml:"border"`
	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
}

// DefaultTheme returns the built-in colors
func DefaultTheme() Theme {
	return Theme{
		Accent:  "#8BC34A",
		Text:    "#F2F2F2",
		Muted:   "#8A94A6",
		Border:  "#2A3850",
		Success: "#8BC34A",
		Warning: "#FFC107",
		Error:   "#E53935",
	}
}

// LoadTheme reads a YAML theme; keys missing from the file keep their defaults
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()

	data, err := os.ReadFile(path)
	if err != nil {
		return theme, fmt.Errorf("failed to read theme: %w", err)
	}
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return DefaultTheme(), fmt.Errorf("failed to parse theme %s: %w", path, err)
	}
	return theme, nil
}

// ThemeCandidates lists where a theme is looked for, in order: the configured
// file, styles/theme.yaml next to the executable, styles/theme.yaml in the
// working directory.
func ThemeCandidates(configured string) []string {
	if configured != "" {
		return []string{configured}
	}

	var candidates []string
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "styles", ThemeFileName))
	}
	return append(candidates, filepath.Join("styles", ThemeFileName))
}

// FindTheme loads the first theme found among the candidates, falling back
// to the default theme when there is none
func FindTheme(configured string, logger *zap.Logger) Theme {
	for _, path := range ThemeCandidates(configured) {
		theme, err := LoadTheme(path)
		if err == nil {
			logger.Debug("Theme loaded", zap.String("path", path))
			return theme
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		logger.Warn("Failed to load theme, using defaults", zap.String("path", path), zap.Error(err))
		return DefaultTheme()
	}

	logger.Debug("No theme found, using defaults")
	return DefaultTheme()
}

// Styles are the lipgloss styles derived from a theme
type Styles struct {
	Box     lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Value   lipgloss.Style
	Help    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// Styles builds the lipgloss styles of the theme
func (t Theme) Styles() Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(1, 2),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Accent)),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Focused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Accent)),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)).Italic(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)),
	}
}
