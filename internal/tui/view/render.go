package view

import (
	"swatchctl/internal/tui/design"
	"swatchctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextSecondaryStyle.Render(m.QuittingMessage)
	case model.ModeHelpOverlay:
		return design.AppStyle.Render(renderHelpOverlay(m))
	case model.ModeLogOverlay:
		return design.AppStyle.Render(renderLogOverlay(m))
	}

	title := design.TitleStyle.Render(IconText(IconPalette, "RGB Color Swatch"))
	channels := design.PanelStyle.Render(renderChannels(m))
	details := renderDetails(m.Swatch.Display(), lipgloss.Width(channels))
	saved := renderSavedColors(m.Swatch.Saved(), m.SelectedSaved)

	parts := []string{title, channels, details, "", saved}
	if m.CurrentAppMode.IsInput() {
		parts = append(parts, "", m.ValueInput.View())
	}
	parts = append(parts, "", renderStatusBar(m))

	return design.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func renderHelpOverlay(m *model.Model) string {
	title := design.TitleStyle.Render("KEYBOARD SHORTCUTS")
	body := m.Help.FullHelpView(m.Keys.FullHelp())
	return design.OverlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

func renderStatusBar(m *model.Model) string {
	var line string
	switch {
	case m.StatusBarMessage != "":
		line = renderStatusMessage(m.StatusBarMessage, m.StatusBarMessageType)
	case m.CurrentAppMode.IsInput():
		line = design.TextMutedStyle.Render("enter apply • esc cancel")
	default:
		line = m.Help.ShortHelpView(m.Keys.ShortHelp())
	}

	if m.DebugMode {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, design.TextMutedStyle.Render("  ["+m.CurrentAppMode.String()+" | "+m.ColorMode+"]"))
	}
	return design.StatusBarStyle.Render(line)
}

func renderStatusMessage(msg string, msgType model.MessageType) string {
	switch msgType {
	case model.StatusBarSuccess:
		return design.TextSuccessStyle.Render(IconText(IconSparkles, msg))
	case model.StatusBarError:
		return design.TextErrorStyle.Render(IconText(IconCross, msg))
	case model.StatusBarWarning:
		return lipgloss.NewStyle().Foreground(design.ColorWarning).Render(IconText(IconWarning, msg))
	default:
		return design.TextStyle.Render(IconText(IconInfo, msg))
	}
}
