package form

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ThemeFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write theme: %v", err)
	}
	return path
}

func TestLoadTheme_OverlaysDefaults(t *testing.T) {
	path := writeTheme(t, "accent: \"#FF0000\"\nerror: \"196\"\n")

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme() error = %v", err)
	}

	def := DefaultTheme()
	if theme.Accent != "#FF0000" || theme.Error != "196" {
		t.Errorf("LoadTheme() = %+v, want overridden accent and error", theme)
	}
	if theme.Text != def.Text || theme.Warning != def.Warning {
		t.Errorf("LoadTheme() = %+v, want defaults for missing keys", theme)
	}
}

func TestLoadTheme_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "none.yaml") }},
		{"malformed yaml", func(t *testing.T) string { return writeTheme(t, "accent: [unclosed\n") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := LoadTheme(tt.path(t))
			if err == nil {
				t.Fatal("LoadTheme() error = nil, want error")
			}
			if theme != DefaultTheme() {
				t.Errorf("LoadTheme() = %+v, want defaults on error", theme)
			}
		})
	}
}

func TestThemeCandidates(t *testing.T) {
	if got := ThemeCandidates("/etc/signsheet/theme.yaml"); len(got) != 1 || got[0] != "/etc/signsheet/theme.yaml" {
		t.Errorf("ThemeCandidates(configured) = %v", got)
	}

	got := ThemeCandidates("")
	if len(got) == 0 || got[len(got)-1] != filepath.Join("styles", ThemeFileName) {
		t.Errorf("ThemeCandidates(\"\") = %v, want working directory fallback last", got)
	}
}

func TestFindTheme(t *testing.T) {
	logger := zap.NewNop()

	path := writeTheme(t, "muted: \"#123456\"\n")
	if got := FindTheme(path, logger); got.Muted != "#123456" {
		t.Errorf("FindTheme(existing) muted = %q", got.Muted)
	}

	broken := writeTheme(t, "text: {unclosed\n")
	if got := FindTheme(broken, logger); got != DefaultTheme() {
		t.Errorf("FindTheme(broken) = %+v, want defaults", got)
	}

	if got := FindTheme(filepath.Join(t.TempDir(), "missing.yaml"), logger); got != DefaultTheme() {
		t.Errorf("FindTheme(missing) = %+v, want defaults", got)
	}
}
