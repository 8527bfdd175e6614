package config

import "swatchctl/internal/swatch"

const defaultAdjustStep = 16

// GetDefaultConfig returns the built-in configuration: a mid-gray start
// color, a 16-step nudge, automatic theme detection and info logging.
func GetDefaultConfig() SwatchConfig {
	return SwatchConfig{
		InitialColor: swatch.DefaultColor.Hex(),
		AdjustStep:   defaultAdjustStep,
		Theme:        ThemeAuto,
		LogLevel:     "info",
	}
}
