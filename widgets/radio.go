package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ChoiceStyles colors radio options and buttons.
type ChoiceStyles struct {
	Normal   lipgloss.Style
	Focused  lipgloss.Style
	Disabled lipgloss.Style
}

// RadioGroup renders a vertical option list. Selected is the chosen index
// (-1 for none) and Cursor the focused one (-1 when the group has no focus).
type RadioGroup struct {
	Options  []string
	Selected int
	Cursor   int
	Disabled bool
	Styles   ChoiceStyles
}

func (r RadioGroup) Render(width, height int) string {
	if width <= 0 || height <= 0 || len(r.Options) == 0 {
		return ""
	}
	start := 0
	if r.Cursor >= height {
		start = r.Cursor - height + 1
	}
	end := min(len(r.Options), start+height)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		mark := "( )"
		if i == r.Selected {
			mark = "(•)"
		}
		pointer := "  "
		if i == r.Cursor {
			pointer = "> "
		}
		style := r.Styles.Normal
		switch {
		case r.Disabled:
			style = r.Styles.Disabled
		case i == r.Cursor:
			style = r.Styles.Focused
		}
		lines = append(lines, style.Render(padRight(pointer+mark+" "+r.Options[i], width)))
	}
	return strings.Join(lines, "\n")
}
