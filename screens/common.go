package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/cupcake/core"
	"github.com/jask/cupcake/internal/flow"
	"github.com/jask/cupcake/widgets"
)

// Labels resolves the texts drawn on screen.
type Labels interface {
	T(id string) string
	TData(id string, data map[string]any) string
	Cupcakes(n int) string
}

// chooser pairs a cursor with the radio group it drives.
type chooser struct {
	cursor *core.Selector
}

func newChooser(items []string) chooser {
	return chooser{cursor: core.NewSelector(items)}
}

// handle moves the cursor and returns the chosen item on select.
func (c chooser) handle(action string) (string, bool) {
	res := c.cursor.HandleAction(action)
	return res.Item, res.Action == core.SelectorActionSelected
}

func (c chooser) radio(selected string, snap flow.Snapshot) widgets.RadioGroup {
	items := c.cursor.Items()
	sel := -1
	for i, it := range items {
		if it == selected {
			sel = i
		}
	}
	return widgets.RadioGroup{
		Options:  items,
		Selected: sel,
		Cursor:   c.cursor.Cursor(),
		Disabled: !snap.Enabled(),
		Styles:   core.ChoiceStyles(),
	}
}

// backOrCancel maps the actions shared by the Flavor and Summary screens.
func backOrCancel(action string) tea.Cmd {
	switch action {
	case core.ActionUp:
		return core.Emit(core.UpMsg{})
	case core.ActionCancel:
		return core.Emit(core.CancelMsg{})
	}
	return nil
}

func pane(title string, body widgets.Widget) widgets.Pane {
	border, accent := core.PaneColors()
	return widgets.Pane{Title: title, Body: body, Border: border, Accent: accent}
}

func heading(text string) widgets.Text {
	return widgets.Text{Content: text, Style: core.HeadingStyle()}
}

// paneHeight fits a pane around n rows, leaving room for the rest of the body.
func paneHeight(n, avail int) int {
	return max(3, min(n+2, avail))
}

type sized struct {
	widget widgets.Widget
	height int
}

func (s sized) Render(width, height int) string {
	return s.widget.Render(width, min(s.height, height))
}

func fieldLines(labels Labels, pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(labels.T(pairs[i]))
		b.WriteString(": ")
		b.WriteString(pairs[i+1])
	}
	return b.String()
}
