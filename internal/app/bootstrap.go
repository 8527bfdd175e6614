package app

import (
	"context"
	"fmt"
	"os"

	"swatchctl/internal/color"
	"swatchctl/internal/config"
	"swatchctl/pkg/logging"
)

const bootstrapSubsystem = "Bootstrap"

// Application is the main application structure that bootstraps and runs swatchctl
type Application struct {
	config  *Config
	initial color.Color
}

// NewApplication loads configuration and resolves the starting color.
func NewApplication(cfg *Config) (*Application, error) {
	// Warnings during loading go to stderr until the level is known.
	logging.InitForCLI(logging.LevelInfo, os.Stderr)

	var swatchCfg config.SwatchConfig
	var err error

	if cfg.ConfigPath != "" {
		swatchCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error(bootstrapSubsystem, err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
	} else {
		swatchCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error(bootstrapSubsystem, err, "Failed to load configuration")
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}
	cfg.SwatchConfig = &swatchCfg

	level := appLogLevel(cfg)
	logging.InitForCLI(level, os.Stderr)
	logging.Debug(bootstrapSubsystem, "Configuration: %+v", swatchCfg)

	initial, err := resolveInitialColor(cfg)
	if err != nil {
		return nil, err
	}

	return &Application{
		config:  cfg,
		initial: initial,
	}, nil
}

// InitialColor is the working color the session starts with.
func (a *Application) InitialColor() color.Color {
	return a.initial
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return runCLIMode(ctx, a.config, a.initial)
	}
	return runTUIMode(ctx, a.config, a.initial)
}

// appLogLevel is the configured level, lowered to debug by --debug.
func appLogLevel(cfg *Config) logging.LogLevel {
	if cfg.Debug {
		return logging.LevelDebug
	}
	level, err := cfg.SwatchConfig.Level()
	if err != nil {
		return logging.LevelInfo
	}
	return level
}

func resolveInitialColor(cfg *Config) (color.Color, error) {
	if cfg.ColorOverride != "" {
		c, err := color.ParseHex(cfg.ColorOverride)
		if err != nil {
			return color.Color{}, fmt.Errorf("--color: %w", err)
		}
		return c, nil
	}
	return cfg.SwatchConfig.InitialRGB()
}
