package app

import (
	"context"

	"swatchctl/internal/cli"
	"swatchctl/internal/color"
	"swatchctl/internal/tui/controller"
	"swatchctl/pkg/logging"
)

// runCLIMode prints the description of the initial color and returns.
func runCLIMode(ctx context.Context, config *Config, initial color.Color) error {
	logging.Debug("CLI", "Running in no-TUI mode.")

	executor := cli.NewToolExecutor(config.Version, cli.ExecutorOptions{
		Format: cli.OutputFormatTable,
		Out:    config.Out,
	})
	if err := executor.Connect(ctx); err != nil {
		return err
	}
	defer executor.Close()

	return executor.Execute(ctx, "color_describe", map[string]interface{}{"hex": initial.Hex()})
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, initial color.Color) error {
	logging.Info("CLI", "Starting TUI mode...")

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(appLogLevel(config))
	defer logging.CloseTUIChannel()

	p := controller.NewProgram(*config.SwatchConfig, initial, config.Debug, logChan)

	// Run the TUI until user exits
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}
