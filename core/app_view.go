package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/cupcake/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	snap := m.flow.Snapshot()
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))

	var body string
	if s := m.ActiveScreen(); s != nil && bodyHeight > 0 {
		body = s.View(max(1, m.width), bodyHeight, snap)
	}
	if m.flow.Guard().Locked() && bodyHeight > 0 {
		popup := popupStyle.Render(m.label("Sending", "Sending order..."))
		body = widgets.RenderPopup(body, popup, max(1, m.width), bodyHeight)
	}
	body = fitHeight(body, bodyHeight)
	view := strings.Join([]string{header, body, status, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderHeader(m Model) string {
	title := ""
	up := false
	if s := m.ActiveScreen(); s != nil {
		title = s.Title()
		up = s.ShowUp()
	}
	left := headerAppStyle.Render(" " + m.appName + " ")
	if up {
		left = headerAppStyle.Render(" ← ") + left
	}
	right := headerTitleStyle.Render(title + " ")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderHeaderBar(headerBarStyle, max(1, m.width), left+headerBarStyle.Render(strings.Repeat(" ", gap))+right)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += style.Render(strings.Repeat(" ", width-lineW))
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
