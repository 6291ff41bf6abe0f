package core

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#f5e0dc"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#f5c2e7"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
	colorPrimary  lipgloss.Color = "#8839ef"
)
