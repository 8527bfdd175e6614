package view

import (
	"swatchctl/internal/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	contrastDark  = colorful.Color{R: 0, G: 0, B: 0}
	contrastLight = colorful.Color{R: 1, G: 1, B: 1}
)

// ContrastText picks black or white text for a swatch of c, whichever is
// farther from it in CIE Lab.
func ContrastText(c color.Color) lipgloss.Color {
	cc := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	if cc.DistanceLab(contrastDark) > cc.DistanceLab(contrastLight) {
		return lipgloss.Color(contrastDark.Hex())
	}
	return lipgloss.Color(contrastLight.Hex())
}

// swatchStyle paints a block in c with readable text on top.
func swatchStyle(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(ContrastText(c)).
		Align(lipgloss.Center, lipgloss.Center)
}
