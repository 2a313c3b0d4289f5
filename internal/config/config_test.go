package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1000 || cfg.Window.Height != 800 {
		t.Errorf("expected 1000x800 window, got %gx%g", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Viewer.ModelColor != "#add8e6" {
		t.Errorf("expected light blue model color, got %s", cfg.Viewer.ModelColor)
	}
	if !cfg.Viewer.ShowEdges || !cfg.Viewer.ShowAxes {
		t.Error("expected edges and axes to be shown by default")
	}
	if !cfg.Watch.Enabled || cfg.Watch.Debounce != 500*time.Millisecond {
		t.Errorf("unexpected watch defaults: %+v", cfg.Watch)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
viewer:
  highlight_color: "#00ff00"
  show_edges: false
watch:
  debounce: 2s
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Viewer.Highlight != "#00ff00" {
		t.Errorf("expected highlight override, got %s", cfg.Viewer.Highlight)
	}
	if cfg.Viewer.ShowEdges {
		t.Error("expected show_edges override to false")
	}
	if cfg.Watch.Debounce != 2*time.Second {
		t.Errorf("expected 2s debounce, got %v", cfg.Watch.Debounce)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}
	// Untouched values keep their defaults
	if cfg.Viewer.ModelColor != "#add8e6" || cfg.Window.Width != 1000 {
		t.Error("expected defaults preserved for unset keys")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for explicit missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("viewer:\n  background: blue\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected validation error for named color")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "stlpick.yaml")

	cfg := Default()
	cfg.Viewer.Background = "#101010"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Viewer.Background != "#101010" {
		t.Errorf("expected saved background, got %s", loaded.Viewer.Background)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"#add8e6", color.NRGBA{R: 0xad, G: 0xd8, B: 0xe6, A: 0xff}, false},
		{"FF000080", color.NRGBA{R: 0xff, A: 0x80}, false},
		{" #000000 ", color.NRGBA{A: 0xff}, false},
		{"#fff", color.NRGBA{}, true},
		{"#zzzzzz", color.NRGBA{}, true},
		{"lightblue", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
