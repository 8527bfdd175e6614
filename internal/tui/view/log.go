package view

import (
	"strings"

	"swatchctl/internal/tui/design"
	"swatchctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	logErrorStyle = lipgloss.NewStyle().Foreground(design.ColorError)
	logWarnStyle  = lipgloss.NewStyle().Foreground(design.ColorWarning)
	logDebugStyle = lipgloss.NewStyle().Foreground(design.ColorTextMuted)
	logTitleStyle = design.SectionTitleStyle.MarginBottom(1)
)

// LogOverlaySize is the viewport size that fits the log overlay in a
// terminal of the given size.
func LogOverlaySize(width, height int) (int, int) {
	w := width - design.OverlayStyle.GetHorizontalFrameSize() - 2*design.SpaceSM
	h := height - design.OverlayStyle.GetVerticalFrameSize() - 2*design.SpaceSM - lipgloss.Height(logTitleStyle.Render(" "))
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

func renderLogOverlay(m *model.Model) string {
	title := logTitleStyle.Render(IconText(IconScroll, "Activity Log  (↑/↓ scroll  •  Esc close)"))
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	return design.OverlayStyle.Render(content)
}

// PrepareLogContent applies color styles based on log level keywords.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, rawLine := range lines {
		if maxWidth > 0 {
			rawLine = runewidth.Truncate(rawLine, maxWidth, IconEllipsis)
		}
		out[i] = styleLogLine(rawLine)
	}
	return strings.Join(out, "\n")
}

// styleLogLine returns the line wrapped in appropriate lipgloss style depending
// on markers contained in the text.
func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return logErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return logWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return logDebugStyle.Render(l)
	default:
		return l
	}
}
