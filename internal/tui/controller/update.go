package controller

import (
	"fmt"

	"swatchctl/internal/tui/model"
	"swatchctl/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// Update is the central message routing function for the TUI. It directs
// each Bubble Tea message to its handler based on the message type and the
// current application mode.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case model.NewLogEntryMsg:
		// not logged: would feed back into itself
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return quit(m)
		}
		if m.CurrentAppMode.IsInput() {
			return handleKeyMsgInputMode(m, msg)
		}
		return handleKeyMsgGlobal(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.ClearStatusBarMsg:
		if msg.Seq == m.StatusBarSeq {
			m.StatusBarMessage = ""
		}
		return m, nil

	case model.ClipboardResultMsg:
		if msg.Err != nil {
			LogError(controllerSubsystem, msg.Err, "Failed to copy %s", msg.Hex)
			return m, m.SetStatusMessage("Copy failed", model.StatusBarError, model.StatusMessageTTL)
		}
		return m, m.SetStatusMessage(fmt.Sprintf("Copied %s", msg.Hex), model.StatusBarSuccess, model.StatusMessageTTL)

	case model.NewLogEntryMsg:
		model.AddRawLineToActivityLog(m, msg.Entry.String())
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			var cmd tea.Cmd
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		if m.CurrentAppMode.IsInput() {
			var cmd tea.Cmd
			m.ValueInput, cmd = m.ValueInput.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	refreshLogViewport(m)
	return m, tea.Batch(cmds...)
}

func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	w, h := view.LogOverlaySize(msg.Width, msg.Height)
	m.LogViewport.Width = w
	m.LogViewport.Height = h
	m.ActivityLogDirty = true
	refreshLogViewport(m)
	return m, nil
}

func refreshLogViewport(m *model.Model) {
	if !m.ActivityLogDirty {
		return
	}
	atBottom := m.LogViewport.AtBottom()
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
	if atBottom {
		m.LogViewport.GotoBottom()
	}
	m.ActivityLogDirty = false
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = fmt.Sprintf("Bye. %d saved color(s) discarded.", m.Swatch.Len())
	return m, tea.Quit
}
