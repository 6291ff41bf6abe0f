package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/cupcake/core"
	"github.com/jask/cupcake/internal/flow"
	"github.com/jask/cupcake/internal/order"
	"github.com/jask/cupcake/widgets"
)

// Flavor lets the user change the preselected flavor and shows the subtotal.
type Flavor struct {
	labels  Labels
	choices chooser
}

func NewFlavor(labels Labels, catalog order.Catalog) *Flavor {
	return &Flavor{labels: labels, choices: newChooser(catalog.Flavors)}
}

func (s *Flavor) ID() flow.Screen { return flow.ScreenFlavor }
func (s *Flavor) Title() string   { return s.labels.T("ChooseFlavor") }
func (s *Flavor) Scope() string   { return core.ScopeFlavor }
func (s *Flavor) ShowUp() bool    { return true }

func (s *Flavor) View(width, height int, snap flow.Snapshot) string {
	disabled := !snap.Enabled()
	rows := len(snap.Catalog.Flavors)
	return widgets.Column{
		Spacing: 1,
		Widgets: []widgets.Widget{
			heading(s.labels.Cupcakes(snap.Order.Quantity)),
			sized{widget: pane(s.labels.T("Flavor"), s.choices.radio(snap.Order.Flavor, snap)), height: paneHeight(rows, height-6)},
			widgets.Text{Content: s.labels.TData("SubtotalPrice", map[string]any{"Price": snap.Price()}), Align: lipgloss.Right},
			widgets.ButtonRow{
				Styles: core.ChoiceStyles(),
				Buttons: []widgets.Button{
					{Label: s.labels.T("Cancel"), Key: "x", Disabled: disabled},
					{Label: s.labels.T("Next"), Key: "n", Disabled: disabled, Primary: true},
				},
			},
		},
	}.Render(width, height)
}

func (s *Flavor) Update(action string, snap flow.Snapshot) tea.Cmd {
	if action == core.ActionNext {
		return core.Emit(core.NextMsg{})
	}
	if cmd := backOrCancel(action); cmd != nil {
		return cmd
	}
	if item, ok := s.choices.handle(action); ok {
		return core.Emit(core.FlavorSelectedMsg{Flavor: item})
	}
	return nil
}

// Mounted focuses the cursor on the order's current flavor.
func (s *Flavor) Mounted(snap flow.Snapshot) {
	s.choices.cursor.Focus(snap.Order.Flavor)
}
