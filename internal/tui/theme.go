package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the dashboard uses.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
)

const (
	colorAccent = colorPink
	colorFocus  = colorLavender
	colorError  = colorRed
)

var (
	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)
	sidebarFocusStyle = sidebarStyle.BorderForeground(colorFocus)
	headingStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle        = lipgloss.NewStyle().Foreground(colorOverlay1)
	valueStyle        = lipgloss.NewStyle().Foreground(colorPeach)
	captionStyle      = lipgloss.NewStyle().Foreground(colorSubtext0).Italic(true)
	hoverStyle        = lipgloss.NewStyle().Foreground(colorText)
	statusStyle       = lipgloss.NewStyle().Foreground(colorSubtext0)
	errorStyle        = lipgloss.NewStyle().Foreground(colorError)
	toggleOnStyle     = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
)
