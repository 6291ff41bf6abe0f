package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Button is a labelled action with a key hint. Disabled buttons render dimmed
// and ignore presses upstream.
type Button struct {
	Label    string
	Key      string
	Disabled bool
	Primary  bool
}

// ButtonRow lays buttons side by side with equal weight.
type ButtonRow struct {
	Buttons []Button
	Styles  ChoiceStyles
}

func (b ButtonRow) Render(width, height int) string {
	if len(b.Buttons) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	cells := make([]Widget, len(b.Buttons))
	for i, btn := range b.Buttons {
		cells[i] = buttonCell{button: btn, styles: b.Styles}
	}
	return HStack{Widgets: cells, Gap: 1}.Render(width, 1)
}

type buttonCell struct {
	button Button
	styles ChoiceStyles
}

func (c buttonCell) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	label := c.button.Label
	if c.button.Key != "" {
		label += " [" + c.button.Key + "]"
	}
	label = ansi.Truncate(label, max(0, width-2), "…")
	style := c.styles.Normal
	switch {
	case c.button.Disabled:
		style = c.styles.Disabled
	case c.button.Primary:
		style = c.styles.Focused
	}
	pad := max(0, width-ansi.StringWidth(label))
	left := pad / 2
	text := strings.Repeat(" ", left) + label + strings.Repeat(" ", pad-left)
	return style.Render(text)
}

// DefaultChoiceStyles is a neutral palette for callers without a theme.
func DefaultChoiceStyles() ChoiceStyles {
	return ChoiceStyles{
		Normal:   lipgloss.NewStyle(),
		Focused:  lipgloss.NewStyle().Bold(true).Reverse(true),
		Disabled: lipgloss.NewStyle().Faint(true),
	}
}
