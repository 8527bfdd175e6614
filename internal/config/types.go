package config

import (
	"fmt"

	"swatchctl/internal/color"
	"swatchctl/pkg/logging"
)

// Theme selects the background the TUI renders against.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// SwatchConfig is the top-level configuration structure for swatchctl.
type SwatchConfig struct {
	InitialColor string `yaml:"initialColor,omitempty"` // Hex color the session starts with, e.g. "#808080"
	AdjustStep   int    `yaml:"adjustStep,omitempty"`   // Channel change for shift+arrow, 1..255
	Theme        Theme  `yaml:"theme,omitempty"`        // "auto", "dark" or "light"
	LogLevel     string `yaml:"logLevel,omitempty"`     // "debug", "info", "warn" or "error"
}

// InitialRGB parses InitialColor.
func (c SwatchConfig) InitialRGB() (color.Color, error) {
	return color.ParseHex(c.InitialColor)
}

// Level parses LogLevel.
func (c SwatchConfig) Level() (logging.LogLevel, error) {
	return logging.ParseLevel(c.LogLevel)
}

// Validate reports the first invalid setting.
func (c SwatchConfig) Validate() error {
	if _, err := c.InitialRGB(); err != nil {
		return fmt.Errorf("initialColor: %w", err)
	}
	if c.AdjustStep < 1 || c.AdjustStep > color.MaxChannel {
		return fmt.Errorf("adjustStep must be between 1 and %d, got %d", color.MaxChannel, c.AdjustStep)
	}
	switch c.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("theme must be one of auto, dark, light, got %q", c.Theme)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("logLevel: %w", err)
	}
	return nil
}
