package controller

import (
	"errors"
	"fmt"

	"swatchctl/internal/color"
	"swatchctl/internal/swatch"
	"swatchctl/internal/tui/design"
	"swatchctl/internal/tui/model"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const swatchSubsystem = "Swatch"

// For mocking in tests
var clipboardWriteAll = clipboard.WriteAll

// handleKeyMsgGlobal processes key presses outside of text input. It
// governs channel focus and nudges, the saved colors and the overlays.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	// --- Overlay-specific key handling --------------------------------------
	if m.CurrentAppMode == model.ModeLogOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeMain
			return m, nil
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		default:
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		}
	}

	if m.CurrentAppMode == model.ModeHelpOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.Help), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeMain
			return m, nil
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)

	case key.Matches(keyMsg, m.Keys.Up):
		m.FocusedChannel = (m.FocusedChannel + 2) % 3
		return m, nil
	case key.Matches(keyMsg, m.Keys.Down):
		m.FocusedChannel = (m.FocusedChannel + 1) % 3
		return m, nil

	case key.Matches(keyMsg, m.Keys.Decrease):
		return adjustFocused(m, -1)
	case key.Matches(keyMsg, m.Keys.Increase):
		return adjustFocused(m, 1)
	case key.Matches(keyMsg, m.Keys.DecreaseStep):
		return adjustFocused(m, -m.AdjustStep)
	case key.Matches(keyMsg, m.Keys.IncreaseStep):
		return adjustFocused(m, m.AdjustStep)

	case key.Matches(keyMsg, m.Keys.EditValue):
		return startInput(m, model.ModeChannelInput)
	case key.Matches(keyMsg, m.Keys.EditHex):
		return startInput(m, model.ModeHexInput)

	case key.Matches(keyMsg, m.Keys.Save):
		sc := m.Swatch.Save()
		LogInfo(swatchSubsystem, "Saved %s (%s), %d saved", sc.Hex, sc.Name, m.Swatch.Len())
		return m, m.SetStatusMessage(fmt.Sprintf("Saved %s %s", sc.Hex, sc.Name), model.StatusBarSuccess, model.StatusMessageTTL)

	case key.Matches(keyMsg, m.Keys.NextSaved):
		m.SelectedSaved = cycleSelection(m.SelectedSaved, m.Swatch.Len(), 1)
		return m, nil
	case key.Matches(keyMsg, m.Keys.PrevSaved):
		m.SelectedSaved = cycleSelection(m.SelectedSaved, m.Swatch.Len(), -1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Remove):
		return removeSelected(m)

	case key.Matches(keyMsg, m.Keys.LoadSaved):
		sc, ok := m.SelectedSavedColor()
		if !ok {
			return m, m.SetStatusMessage("No saved color selected", model.StatusBarWarning, model.StatusMessageTTL)
		}
		m.Swatch.SetColor(sc.Color())
		return m, m.SetStatusMessage(fmt.Sprintf("Loaded %s", sc.Hex), model.StatusBarInfo, model.StatusMessageTTL)

	case key.Matches(keyMsg, m.Keys.CopyHex):
		hex := m.Swatch.Display().Hex
		return m, copyHexCmd(hex)

	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleDark):
		dark := design.ToggleDark()
		m.ColorMode = fmt.Sprintf("%s (Dark: %v)", lipgloss.ColorProfile().String(), dark)
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleDebug):
		m.DebugMode = !m.DebugMode
		return m, nil
	}

	return m, nil
}

func adjustFocused(m *model.Model, delta int) (*model.Model, tea.Cmd) {
	m.Swatch.Adjust(m.FocusedChannel, delta)
	LogDebug(m, swatchSubsystem, "%s -> %d", m.FocusedChannel.Label(), m.Swatch.Color().Get(m.FocusedChannel))
	return m, nil
}

func startInput(m *model.Model, mode model.AppMode) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = mode
	m.ValueInput.Reset()
	if mode == model.ModeHexInput {
		m.ValueInput.Prompt = "HEX: "
		m.ValueInput.Placeholder = m.Swatch.Display().Hex
	} else {
		m.ValueInput.Prompt = m.FocusedChannel.Label() + ": "
		m.ValueInput.Placeholder = fmt.Sprintf("0-%d", color.MaxChannel)
	}
	return m, m.ValueInput.Focus()
}

// cycleSelection moves a selection through n items, wrapping at both ends.
// With nothing selected, moving forward starts at the first item and
// moving backward at the last.
func cycleSelection(current, n, dir int) int {
	if n == 0 {
		return model.NoSelection
	}
	if current < 0 || current >= n {
		if dir < 0 {
			return n - 1
		}
		return 0
	}
	return (current + dir + n) % n
}

func removeSelected(m *model.Model) (*model.Model, tea.Cmd) {
	if m.SelectedSaved == model.NoSelection {
		return m, m.SetStatusMessage("No saved color selected", model.StatusBarWarning, model.StatusMessageTTL)
	}

	sc, _ := m.SelectedSavedColor()
	if err := m.Swatch.Remove(m.SelectedSaved); err != nil {
		if errors.Is(err, swatch.ErrOutOfRange) {
			LogWarn(swatchSubsystem, "Stale selection %d: %v", m.SelectedSaved, err)
			m.SelectedSaved = model.NoSelection
			return m, nil
		}
		LogError(swatchSubsystem, err, "Remove failed")
		return m, nil
	}

	LogInfo(swatchSubsystem, "Removed %s at %d, %d saved", sc.Hex, m.SelectedSaved, m.Swatch.Len())
	if n := m.Swatch.Len(); n == 0 {
		m.SelectedSaved = model.NoSelection
	} else if m.SelectedSaved >= n {
		m.SelectedSaved = n - 1
	}
	return m, m.SetStatusMessage(fmt.Sprintf("Removed %s", sc.Hex), model.StatusBarInfo, model.StatusMessageTTL)
}

func copyHexCmd(hex string) tea.Cmd {
	return func() tea.Msg {
		return model.ClipboardResultMsg{Hex: hex, Err: clipboardWriteAll(hex)}
	}
}
