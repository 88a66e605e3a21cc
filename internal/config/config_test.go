package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Theme != ThemeLight {
		t.Errorf("expected default theme %q, got %q", ThemeLight, cfg.Theme)
	}
	if !cfg.Animations {
		t.Error("expected animations enabled by default")
	}
	if cfg.SwipeThreshold != 50 {
		t.Errorf("expected default swipe_threshold 50, got %v", cfg.SwipeThreshold)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.slidecast.yml")

	original := DefaultConfig()
	original.Theme = ThemeDark
	original.IncludeNotes = true
	original.OutputDir = "out"
	original.Port = 9001
	original.SwipeThreshold = 75

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Theme != original.Theme {
		t.Errorf("theme: got %q, want %q", loaded.Theme, original.Theme)
	}
	if loaded.IncludeNotes != original.IncludeNotes {
		t.Errorf("include_notes: got %v, want %v", loaded.IncludeNotes, original.IncludeNotes)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.SwipeThreshold != original.SwipeThreshold {
		t.Errorf("swipe_threshold: got %v, want %v", loaded.SwipeThreshold, original.SwipeThreshold)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Theme != ThemeLight {
		t.Errorf("expected default theme, got %q", cfg.Theme)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("SLIDECAST_THEME", "dark")
	defer os.Unsetenv("SLIDECAST_THEME")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Theme != ThemeDark {
		t.Errorf("env override failed: got %q, want %q", loaded.Theme, ThemeDark)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalidTheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "sepia"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid theme")
	}
}

func TestValidateEmptyTheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty theme")
	}
}

func TestValidateBadThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SwipeThreshold = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for non-positive threshold")
	}
}

func TestValidateBadPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for out-of-range port")
	}
}

func TestValidateEmptyHistoryDB(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HistoryDB = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty history_db")
	}
}
