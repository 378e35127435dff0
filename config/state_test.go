package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadStateDefaultsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	state, err := LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if state.PaletteSize != 32 {
		t.Errorf("default palette size = %d, want 32", state.PaletteSize)
	}
	if state.Theme != "auto" {
		t.Errorf("default theme = %q, want auto", state.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	saved := &AppState{PaletteSize: 16, Theme: "dark"}
	if err := SaveState(saved); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	loaded, err := LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if loaded.PaletteSize != 16 || loaded.Theme != "dark" {
		t.Fatalf("loaded state = %+v, want palette 16 theme dark", loaded)
	}
}

func TestLoadStateCorruptFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := os.MkdirAll(filepath.Join(home, ".prism"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".prism", "state.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	state, err := LoadState()
	if err != nil {
		t.Fatalf("LoadState on corrupt file: %v", err)
	}
	if state.PaletteSize != 32 || state.Theme != "auto" {
		t.Fatalf("corrupt state.json should load defaults, got %+v", state)
	}
}

func TestLoadStateSanitizesValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := os.MkdirAll(filepath.Join(home, ".prism"), 0755); err != nil {
		t.Fatal(err)
	}
	raw := []byte(`{"palette_size": -5, "theme": "neon"}`)
	if err := os.WriteFile(filepath.Join(home, ".prism", "state.json"), raw, 0644); err != nil {
		t.Fatal(err)
	}

	state, err := LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if state.PaletteSize != 32 {
		t.Errorf("palette size = %d, want sanitized 32", state.PaletteSize)
	}
	if state.Theme != "auto" {
		t.Errorf("theme = %q, want sanitized auto", state.Theme)
	}
}
