package view

import (
	"fmt"
	"strings"

	"swatchctl/internal/color"
	"swatchctl/internal/swatch"
	"swatchctl/internal/tui/design"
	"swatchctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

var channelAccent = map[color.Channel]lipgloss.AdaptiveColor{
	color.ChannelR: design.ColorChannelR,
	color.ChannelG: design.ColorChannelG,
	color.ChannelB: design.ColorChannelB,
}

// renderSlider draws one channel as "› R [128] ███████░░░░░░░".
func renderSlider(ch color.Channel, value uint8, focused bool, width int) string {
	filled := int(value) * width / color.MaxChannel
	bar := lipgloss.NewStyle().Foreground(channelAccent[ch]).Render(strings.Repeat(IconFilled, filled)) +
		design.TextMutedStyle.Render(strings.Repeat(IconUnfilled, width-filled))

	pointer := "  "
	label := design.TextStyle.Render(ch.Label())
	if focused {
		pointer = SafeIcon(IconPointer)
		label = design.FocusedLabelStyle.Render(ch.Label())
	}
	return fmt.Sprintf("%s%s [%3d] %s", pointer, label, value, bar)
}

func renderChannels(m *model.Model) string {
	c := m.Swatch.Color()
	rows := make([]string, 0, len(color.Channels))
	for _, ch := range color.Channels {
		rows = append(rows, renderSlider(ch, c.Get(ch), ch == m.FocusedChannel, design.SliderWidth))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderDetails shows the swatch block and every derived value of the
// working color.
func renderDetails(d swatch.Display, width int) string {
	block := swatchStyle(d.Color()).
		Width(width).
		Height(design.SwatchHeight).
		Render(d.Hex)

	lines := []string{
		block,
		"",
		design.SectionTitleStyle.Render("Color: " + d.Name),
		design.TextStyle.Render(fmt.Sprintf("RGB: (%d, %d, %d)", d.R, d.G, d.B)),
		design.TextStyle.Render("HEX: " + d.Hex),
		design.TextStyle.Render(fmt.Sprintf("HSL: (%d°, %d%%, %d%%)", d.Hue, d.Saturation, d.Lightness)),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// renderSavedColors lays the saved colors out in rows of
// design.SavedPerRow cells, highlighting the selected one.
func renderSavedColors(saved []swatch.SavedColor, selected int) string {
	title := design.SectionTitleStyle.Render(fmt.Sprintf("Saved Colors (%d)", len(saved)))
	if len(saved) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, design.TextMutedStyle.Render("Press s to save the current color."))
	}

	var rows []string
	var cells []string
	for i, sc := range saved {
		cells = append(cells, renderSavedCell(i, sc, i == selected))
		if len(cells) == design.SavedPerRow || i == len(saved)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, rows...)...)
}

func renderSavedCell(index int, sc swatch.SavedColor, selected bool) string {
	chip := swatchStyle(sc.Color()).
		Width(design.SavedCellSize).
		Render(sc.Hex)

	marker := " "
	if selected {
		marker = IconSelection
	}
	caption := fitWidth(fmt.Sprintf("%s%d %s", marker, index+1, sc.Name), design.SavedCellSize)

	style := design.PanelStyle
	if selected {
		style = design.PanelFocusedStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, chip, caption))
}
