package model

import (
	"time"

	"swatchctl/internal/color"
	"swatchctl/internal/swatch"
	"swatchctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMain AppMode = iota
	ModeChannelInput
	ModeHexInput
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeChannelInput:
		return "ChannelInput"
	case ModeHexInput:
		return "HexInput"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// IsInput reports whether the mode routes keys to the text input.
func (m AppMode) IsInput() bool {
	return m == ModeChannelInput || m == ModeHexInput
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	NoSelection         = -1
	StatusMessageTTL    = 3 * time.Second
)

// Model is the state of the swatch TUI.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Swatch state
	Swatch         *swatch.State
	FocusedChannel color.Channel
	SelectedSaved  int
	AdjustStep     int

	// Global application state
	CurrentAppMode  AppMode
	DebugMode       bool
	ColorMode       string
	QuittingMessage string

	// UI State & Output
	Keys                 KeyMap
	Help                 help.Model
	ValueInput           textinput.Model
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarSeq         uint64

	// Logging
	LogChannel <-chan logging.LogEntry
}

// SelectedSavedColor returns the highlighted saved color, if any.
func (m *Model) SelectedSavedColor() (swatch.SavedColor, bool) {
	saved := m.Swatch.Saved()
	if m.SelectedSaved < 0 || m.SelectedSaved >= len(saved) {
		return swatch.SavedColor{}, false
	}
	return saved[m.SelectedSaved], true
}

// SetStatusMessage shows a message in the status bar and schedules its
// removal. The clear only applies while this message is still current.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType
	m.StatusBarSeq++
	seq := m.StatusBarSeq

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		return ClearStatusBarMsg{Seq: seq}
	})
}
