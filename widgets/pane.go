package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane draws a titled, rounded frame around Body.
type Pane struct {
	Title  string
	Body   Widget
	Border lipgloss.TerminalColor
	Accent lipgloss.TerminalColor
}

func (p Pane) Render(width, height int) string {
	if width < 4 || height < 3 {
		return ""
	}
	innerW := width - 4
	innerH := height - 2
	var body string
	if p.Body != nil {
		body = p.Body.Render(innerW, innerH)
	}
	lines := strings.Split(body, "\n")
	if body == "" {
		lines = nil
	}
	for i := range lines {
		lines[i] = padRight(lines[i], innerW)
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width - 2)
	if p.Border != nil {
		style = style.BorderForeground(p.Border)
	}
	framed := style.Render(strings.Join(lines, "\n"))
	if p.Title == "" {
		return framed
	}
	titleStyle := lipgloss.NewStyle().Bold(true)
	if p.Accent != nil {
		titleStyle = titleStyle.Foreground(p.Accent)
	}
	return titleBorder(framed, p.Title, titleStyle, width)
}

// titleBorder writes title into the top border line.
func titleBorder(framed, title string, style lipgloss.Style, width int) string {
	lines := strings.Split(framed, "\n")
	if len(lines) == 0 || width < 6 {
		return framed
	}
	label := " " + ansi.Truncate(title, width-6, "…") + " "
	top := lines[0]
	prefix := ansi.Truncate(top, 2, "")
	rest := dropColumns(top, 2+ansi.StringWidth(label))
	lines[0] = prefix + style.Render(label) + rest
	return strings.Join(lines, "\n")
}
