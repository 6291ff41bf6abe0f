package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/cupcake/core"
	"github.com/jask/cupcake/internal/flow"
	"github.com/jask/cupcake/internal/order"
	"github.com/jask/cupcake/widgets"
)

// Summary shows the order, lets the user pick the pickup date and sends it.
type Summary struct {
	labels  Labels
	choices chooser
}

func NewSummary(labels Labels, catalog order.Catalog) *Summary {
	return &Summary{labels: labels, choices: newChooser(catalog.Dates)}
}

func (s *Summary) ID() flow.Screen { return flow.ScreenSummary }
func (s *Summary) Title() string   { return s.labels.T("OrderSummary") }
func (s *Summary) Scope() string   { return core.ScopeSummary }
func (s *Summary) ShowUp() bool    { return true }

func (s *Summary) View(width, height int, snap flow.Snapshot) string {
	disabled := !snap.Enabled()
	fields := fieldLines(s.labels,
		"Quantity", s.labels.Cupcakes(snap.Order.Quantity),
		"Flavor", snap.Order.Flavor,
		"PickupDate", snap.Order.PickupDate,
	)
	rows := len(snap.Catalog.Dates)
	return widgets.Column{
		Spacing: 1,
		Widgets: []widgets.Widget{
			widgets.Text{Content: fields},
			widgets.Divider{Color: core.MutedStyle().GetForeground()},
			sized{widget: pane(s.labels.T("PickupDate"), s.choices.radio(snap.Order.PickupDate, snap)), height: paneHeight(rows, height-10)},
			widgets.Text{Content: s.labels.TData("TotalPrice", map[string]any{"Price": snap.Price()}), Style: core.HeadingStyle(), Align: lipgloss.Right},
			widgets.ButtonRow{
				Styles: core.ChoiceStyles(),
				Buttons: []widgets.Button{
					{Label: s.labels.T("Cancel"), Key: "x", Disabled: disabled},
					{Label: s.labels.T("Send"), Key: "s", Disabled: disabled, Primary: true},
				},
			},
		},
	}.Render(width, height)
}

func (s *Summary) Update(action string, snap flow.Snapshot) tea.Cmd {
	if action == core.ActionSend {
		return core.Emit(core.SendMsg{})
	}
	if cmd := backOrCancel(action); cmd != nil {
		return cmd
	}
	if item, ok := s.choices.handle(action); ok {
		return core.Emit(core.DateSelectedMsg{Date: item})
	}
	return nil
}

// Mounted focuses the cursor on the order's pickup date.
func (s *Summary) Mounted(snap flow.Snapshot) {
	s.choices.cursor.Focus(snap.Order.PickupDate)
}
