package controller

import (
	"swatchctl/internal/color"
	"swatchctl/internal/config"
	"swatchctl/internal/tui/design"
	"swatchctl/internal/tui/model"
	"swatchctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for an interactive swatch session.
func NewProgram(
	cfg config.SwatchConfig,
	initial color.Color,
	debugMode bool,
	logChannel <-chan logging.LogEntry,
) *tea.Program {
	design.Initialize(cfg.Theme)

	m := model.InitializeModel(initial, cfg.AdjustStep, debugMode, logChannel)
	app := NewAppModel(m)

	return tea.NewProgram(app, tea.WithAltScreen())
}
