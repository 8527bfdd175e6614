package controller

import (
	"fmt"

	"swatchctl/internal/color"
	"swatchctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgInputMode processes key presses while a value or hex color
// is being typed. Enter applies the value, Esc cancels, and every other
// key goes to the bubbles/textinput component.
func handleKeyMsgInputMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		return leaveInput(m), nil

	case "enter":
		raw := m.ValueInput.Value()
		if m.CurrentAppMode == model.ModeHexInput {
			c, err := color.ParseHex(raw)
			if err != nil {
				LogWarn(swatchSubsystem, "Rejected hex %q: %v", raw, err)
				return m, m.SetStatusMessage(fmt.Sprintf("Invalid hex %q", raw), model.StatusBarError, model.StatusMessageTTL)
			}
			m.Swatch.SetColor(c)
			leaveInput(m)
			return m, m.SetStatusMessage(fmt.Sprintf("Color set to %s", c.Hex()), model.StatusBarInfo, model.StatusMessageTTL)
		}

		if err := m.Swatch.SetChannel(m.FocusedChannel, raw); err != nil {
			LogWarn(swatchSubsystem, "Rejected %s value %q: %v", m.FocusedChannel.Label(), raw, err)
			return m, m.SetStatusMessage(fmt.Sprintf("Not a number: %q", raw), model.StatusBarError, model.StatusMessageTTL)
		}
		leaveInput(m)
		v := m.Swatch.Color().Get(m.FocusedChannel)
		return m, m.SetStatusMessage(fmt.Sprintf("%s set to %d", m.FocusedChannel.Label(), v), model.StatusBarInfo, model.StatusMessageTTL)
	}

	var cmd tea.Cmd
	m.ValueInput, cmd = m.ValueInput.Update(keyMsg)
	return m, cmd
}

func leaveInput(m *model.Model) *model.Model {
	m.CurrentAppMode = model.ModeMain
	m.ValueInput.Blur()
	m.ValueInput.Reset()
	return m
}
