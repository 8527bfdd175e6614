package model

import (
	"fmt"

	"swatchctl/internal/color"
	"swatchctl/internal/swatch"
	"swatchctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InitializeModel builds the TUI model around a fresh swatch session.
func InitializeModel(
	initial color.Color,
	adjustStep int,
	debugMode bool,
	logChannel <-chan logging.LogEntry,
) *Model {
	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 20

	colorMode := fmt.Sprintf("%s (Dark: %v)", lipgloss.ColorProfile().String(), lipgloss.HasDarkBackground())

	return &Model{
		Swatch:         swatch.New(initial),
		FocusedChannel: color.ChannelR,
		SelectedSaved:  NoSelection,
		AdjustStep:     adjustStep,
		CurrentAppMode: ModeMain,
		DebugMode:      debugMode,
		ColorMode:      colorMode,
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		ValueInput:     ti,
		LogViewport:    viewport.New(0, 0),
		LogChannel:     logChannel,
	}
}

// Init starts listening for log entries.
func (m *Model) Init() tea.Cmd {
	return ListenForLogEntriesCmd(m.LogChannel)
}
