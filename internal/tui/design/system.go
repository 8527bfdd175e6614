package design

import (
	"swatchctl/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Spacing units
const (
	SpaceNone = 0
	SpaceXS   = 1
	SpaceSM   = 2
	SpaceMD   = 3

	// Component dimensions
	SliderWidth   = 32
	SwatchHeight  = 5
	SavedCellSize = 14
	SavedPerRow   = 3
)

// Color Palette - Semantic colors with consistent light/dark mode support
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}

	ColorSuccess = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"}

	ColorSurface     = lipgloss.AdaptiveColor{Light: "#F9FAFB", Dark: "#1A1A1A"}
	ColorBorder      = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#404040"}
	ColorBorderFocus = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}

	ColorText          = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
	ColorTextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ColorTextMuted     = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// Channel accents for the R, G and B sliders
	ColorChannelR = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	ColorChannelG = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
	ColorChannelB = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
)

// Base Styles - Foundation for all components
var (
	AppStyle = lipgloss.NewStyle().Padding(SpaceXS, SpaceSM)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			MarginBottom(SpaceXS)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true)

	TextStyle          = lipgloss.NewStyle().Foreground(ColorText)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(ColorTextSecondary)
	TextMutedStyle     = lipgloss.NewStyle().Foreground(ColorTextMuted)
	TextErrorStyle     = lipgloss.NewStyle().Foreground(ColorError)
	TextSuccessStyle   = lipgloss.NewStyle().Foreground(ColorSuccess)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(SpaceNone, SpaceXS)

	PanelFocusedStyle = PanelStyle.
				BorderForeground(ColorBorderFocus)

	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderFocus).
			Padding(SpaceXS, SpaceSM)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorSurface).
			Padding(SpaceNone, SpaceXS)

	QuitKeyStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
)

// Initialize fixes the background lipgloss resolves adaptive colors
// against. ThemeAuto keeps the terminal's own detection.
func Initialize(theme config.Theme) {
	switch theme {
	case config.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	case config.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	}
}

// ToggleDark flips between dark and light rendering and reports the new
// setting.
func ToggleDark() bool {
	dark := !lipgloss.HasDarkBackground()
	lipgloss.SetHasDarkBackground(dark)
	return dark
}
