package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/cupcake/core"
	"github.com/jask/cupcake/internal/flow"
	"github.com/jask/cupcake/internal/order"
	"github.com/jask/cupcake/widgets"
)

// Start offers the fixed quantities. Choosing one starts an order.
type Start struct {
	labels     Labels
	quantities []int
	choices    chooser
}

func NewStart(labels Labels, catalog order.Catalog) *Start {
	items := make([]string, 0, len(catalog.Quantities))
	for _, q := range catalog.Quantities {
		items = append(items, labels.Cupcakes(q))
	}
	return &Start{labels: labels, quantities: catalog.Quantities, choices: newChooser(items)}
}

func (s *Start) ID() flow.Screen { return flow.ScreenStart }
func (s *Start) Title() string   { return s.labels.T("OrderCupcakes") }
func (s *Start) Scope() string   { return core.ScopeStart }
func (s *Start) ShowUp() bool    { return false }

func (s *Start) View(width, height int, snap flow.Snapshot) string {
	body := s.choices.radio("", snap)
	return widgets.Column{
		Spacing: 1,
		Widgets: []widgets.Widget{
			heading(s.labels.T("OrderCupcakes")),
			sized{widget: pane(s.labels.T("Quantity"), body), height: paneHeight(len(s.quantities), height-2)},
		},
	}.Render(width, height)
}

func (s *Start) Update(action string, snap flow.Snapshot) tea.Cmd {
	if _, ok := s.choices.handle(action); !ok {
		return nil
	}
	return core.Emit(core.QuantitySelectedMsg{Quantity: s.quantities[s.choices.cursor.Cursor()]})
}

// Mounted puts the cursor back on the first quantity for a fresh order.
func (s *Start) Mounted(snap flow.Snapshot) {
	if snap.Order.IsZero() {
		if items := s.choices.cursor.Items(); len(items) > 0 {
			s.choices.cursor.Focus(items[0])
		}
	}
}
