// Package config handles application configuration loading.
package config

import (
	"fmt"
	"image/color"
	"strings"
	"time"
)

// Config holds all application settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds main window settings.
type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// ViewerConfig holds viewport display settings. Colors are "#rrggbb" or
// "#rrggbbaa" strings.
type ViewerConfig struct {
	Background    string `yaml:"background"`
	ModelColor    string `yaml:"model_color"`
	Highlight     string `yaml:"highlight_color"`
	FaceHighlight string `yaml:"face_highlight_color"`
	ShowEdges     bool   `yaml:"show_edges"`
	ShowAxes      bool   `yaml:"show_axes"`
}

// WatchConfig holds auto-reload settings.
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "STL & 3MF Viewer",
			Width:  1000,
			Height: 800,
		},
		Viewer: ViewerConfig{
			Background:    "#ffffff",
			ModelColor:    "#add8e6", // light blue
			Highlight:     "#ff8c00",
			FaceHighlight: "#e01e1e",
			ShowEdges:     true,
			ShowAxes:      true,
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: 500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks values that cannot be used as configured.
func (c *Config) Validate() error {
	for name, value := range map[string]string{
		"viewer.background":           c.Viewer.Background,
		"viewer.model_color":          c.Viewer.ModelColor,
		"viewer.highlight_color":      c.Viewer.Highlight,
		"viewer.face_highlight_color": c.Viewer.FaceHighlight,
	} {
		if _, err := ParseColor(value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %gx%g", c.Window.Width, c.Window.Height)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %v", c.Watch.Debounce)
	}
	return nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	c := color.NRGBA{A: 0xff}
	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		return c, fmt.Errorf("invalid color %q: expected #rrggbb or #rrggbbaa", s)
	}
	if err != nil {
		return c, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// MustColor parses a color that already passed Validate.
func MustColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
