package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup centers an already styled popup over base. Columns of base
// outside the popup's visible span stay readable.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	under := splitToLines(base, height)
	over := splitToLines(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup), height)
	out := make([]string, height)
	for i := range out {
		row := padRight(under[i], width)
		top := padRight(over[i], width)
		start, end, ok := visibleSpan(top, width)
		if !ok {
			out[i] = row
			continue
		}
		left := ansi.Truncate(row, start, "")
		mid := ansi.Truncate(dropColumns(top, start), end-start, "")
		out[i] = padRight(left+mid+dropColumns(row, end), width)
	}
	return strings.Join(out, "\n")
}

// visibleSpan returns the columns between the first and last non-blank cell.
func visibleSpan(line string, width int) (start, end int, ok bool) {
	plain := []rune(ansi.Strip(ansi.Truncate(line, width, "")))
	end = len(plain)
	for end > 0 && plain[end-1] == ' ' {
		end--
	}
	for start < end && plain[start] == ' ' {
		start++
	}
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}
