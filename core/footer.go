package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// guardedActions go dim in the footer while the flow ignores them.
var guardedActions = map[string]bool{
	ActionSelect: true,
	ActionNext:   true,
	ActionUp:     true,
	ActionCancel: true,
	ActionSend:   true,
}

// footerBindings returns the help bindings of the active scope. Guarded
// actions are disabled while a transition or a share is pending.
func footerBindings(m Model) []key.Binding {
	enabled := m.flow.Guard().Enabled()
	scoped := m.keys.BindingsForScope(m.ActiveScope())
	out := make([]key.Binding, 0, len(scoped))
	for _, b := range scoped {
		if len(b.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		if guardedActions[b.Action] && !enabled {
			kb.SetEnabled(false)
		}
		out = append(out, kb)
	}
	return out
}

func RenderFooter(m Model) string {
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	offStyle := lipgloss.NewStyle().Foreground(colorBorder).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	bindings := footerBindings(m)
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		if kb.Enabled() {
			parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
			continue
		}
		parts = append(parts, offStyle.Render(h.Key+" "+h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = descStyle.Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, m.width), line, bg)
}

// RenderStatusBar shows the last status, or the guard phase when nothing
// has been reported yet.
func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = m.flow.Guard().Phase().String()
	}
	style := statusBarStyle
	if m.statusErr {
		style = statusErrBarStyle
	}
	return renderBar(style, max(1, m.width), msg, colorSurface0)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "…")
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return style.Background(bg).Width(width).MaxWidth(width).Render(line)
}
