package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestThemeFileLoading(t *testing.T) {
	isolate(t)

	themeContent := []byte(`theme:
  accent: "#FF0000"
  done: "#00FF00"
  progress_end: "#0000FF"
`)
	themePath := filepath.Join(t.TempDir(), "avance-theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Done != "#00FF00" {
		t.Errorf("Expected done to be #00FF00, got %s", cfg.ColorScheme.Done)
	}
	if cfg.ColorScheme.ProgressEnd != "#0000FF" {
		t.Errorf("Expected progress_end to be #0000FF, got %s", cfg.ColorScheme.ProgressEnd)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.ErrorFg == "" {
		t.Error("Expected error_fg to have default value")
	}
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	isolate(t)
	t.Setenv(EnvThemeFile, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ColorScheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("Accent = %s, want default", cfg.ColorScheme.Accent)
	}
}

func TestPresetFallback(t *testing.T) {
	scheme := ColorScheme{Preset: "does-not-exist"}
	scheme.ApplyDefaults()

	if scheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("unknown preset should fall back to default, got accent %s", scheme.Accent)
	}
}
