package core

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/cupcake/widgets"
)

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorPrimary).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorPrimary).
			Foreground(colorText)
	headerTitleStyle = lipgloss.NewStyle().
				Background(colorPrimary).
				Foreground(colorAccent)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 3)
)

// ChoiceStyles is the theme palette for radio groups and buttons.
func ChoiceStyles() widgets.ChoiceStyles {
	return widgets.ChoiceStyles{
		Normal:   lipgloss.NewStyle().Foreground(colorText),
		Focused:  lipgloss.NewStyle().Foreground(colorMantle).Background(colorAccent).Bold(true),
		Disabled: lipgloss.NewStyle().Foreground(colorBorder),
	}
}

// HeadingStyle renders screen headings.
func HeadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
}

// MutedStyle renders secondary text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorMuted)
}

// PaneColors returns the border and title colors for framed panes.
func PaneColors() (border, accent lipgloss.TerminalColor) {
	return colorBorder, colorAccent
}
