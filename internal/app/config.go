package app

import (
	"io"
	"os"

	"swatchctl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ColorOverride replaces the configured initial color when set.
	ColorOverride string

	// ConfigPath loads a single config file instead of the layered lookup.
	ConfigPath string

	// Version is reported by the embedded tool server.
	Version string

	// Out receives the no-TUI description.
	Out io.Writer

	// Swatch configuration, filled in by NewApplication
	SwatchConfig *config.SwatchConfig
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, colorOverride string) *Config {
	return &Config{
		NoTUI:         noTUI,
		Debug:         debug,
		ColorOverride: colorOverride,
		Out:           os.Stdout,
	}
}
