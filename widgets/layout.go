package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Widget renders into at most width columns and height rows.
type Widget interface {
	Render(width, height int) string
}

// Text is a static block of lines.
type Text struct {
	Content string
	Style   lipgloss.Style
	Align   lipgloss.Position
}

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(t.Content, "\n")
	for i, l := range lines {
		l = t.Style.Render(ansi.Truncate(l, width, ""))
		lines[i] = lipgloss.PlaceHorizontal(width, t.Align, l)
	}
	return clipLines(lines, height)
}

// Divider is a full-width horizontal rule.
type Divider struct {
	Color lipgloss.TerminalColor
}

func (d Divider) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rule := strings.Repeat("─", width)
	if d.Color == nil {
		return rule
	}
	return lipgloss.NewStyle().Foreground(d.Color).Render(rule)
}

// Column stacks widgets top to bottom, each at its natural height, until the
// height runs out.
type Column struct {
	Widgets []Widget
	Spacing int
}

func (c Column) Render(width, height int) string {
	if len(c.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	lines := make([]string, 0, height)
	for i, w := range c.Widgets {
		remaining := height - len(lines)
		if remaining <= 0 {
			break
		}
		if w == nil {
			continue
		}
		part := w.Render(width, remaining)
		if part != "" {
			lines = append(lines, strings.Split(part, "\n")...)
		}
		if i < len(c.Widgets)-1 {
			for s := 0; s < c.Spacing; s++ {
				lines = append(lines, "")
			}
		}
	}
	return clipLines(lines, height)
}

// HStack lays widgets side by side, splitting width by Ratios.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	usable := max(1, width-gapTotal)
	widths := splitWidths(usable, len(h.Widgets), h.Ratios)
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		part := strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rendered[i] = part
		maxLines = max(maxLines, len(part))
	}
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = padRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		width := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = width
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		sum += math.Max(r, 1e-9)
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		w := int(math.Floor((math.Max(ratios[i], 1e-9) / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func clipLines(lines []string, height int) string {
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
