package screens

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/cupcake/core"
	"github.com/jask/cupcake/internal/flow"
	"github.com/jask/cupcake/internal/locale"
	"github.com/jask/cupcake/internal/order"
)

var testDates = []string{"Wed Oct 14", "Thu Oct 15", "Fri Oct 16", "Sat Oct 17"}

func newTestFlow(t *testing.T) (*flow.Flow, *locale.Localizer) {
	t.Helper()
	labels, err := locale.New("en")
	if err != nil {
		t.Fatalf("locale: %v", err)
	}
	state := order.NewState(order.NewCatalog(labels.Flavors(), testDates), order.DefaultPricing())
	return flow.New(state, labels, "$", slog.New(slog.NewTextHandler(io.Discard, nil))), labels
}

func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected command")
	}
	return cmd()
}

func TestStartSelectsQuantityUnderCursor(t *testing.T) {
	f, labels := newTestFlow(t)
	s := NewStart(labels, f.Catalog())
	snap := f.Snapshot()

	if cmd := s.Update(core.ActionCursorDown, snap); cmd != nil {
		t.Fatalf("cursor move should not emit")
	}
	msg, ok := run(t, s.Update(core.ActionSelect, snap)).(core.QuantitySelectedMsg)
	if !ok || msg.Quantity != 6 {
		t.Fatalf("expected quantity 6, got %#v", msg)
	}
	out := ansi.Strip(s.View(40, 12, snap))
	for _, want := range []string{"Order Cupcakes", "1 cupcake", "6 cupcakes", "12 cupcakes"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in start view:\n%s", want, out)
		}
	}
}

func TestStartMountedResetsCursor(t *testing.T) {
	f, labels := newTestFlow(t)
	s := NewStart(labels, f.Catalog())
	s.Update(core.ActionCursorDown, f.Snapshot())
	s.Update(core.ActionCursorDown, f.Snapshot())
	s.Mounted(f.Snapshot())
	msg := run(t, s.Update(core.ActionSelect, f.Snapshot())).(core.QuantitySelectedMsg)
	if msg.Quantity != 1 {
		t.Fatalf("expected cursor back on first quantity, got %d", msg.Quantity)
	}
}

func TestFlavorEmitsChoicesAndNavigation(t *testing.T) {
	f, labels := newTestFlow(t)
	f.SelectQuantity(6)
	f.Entered(flow.ScreenFlavor)
	s := NewFlavor(labels, f.Catalog())
	s.Mounted(f.Snapshot())
	snap := f.Snapshot()

	s.Update(core.ActionCursorDown, snap)
	if msg := run(t, s.Update(core.ActionSelect, snap)).(core.FlavorSelectedMsg); msg.Flavor != "Chocolate" {
		t.Fatalf("expected chocolate, got %q", msg.Flavor)
	}
	cases := map[string]tea.Msg{
		core.ActionNext:   core.NextMsg{},
		core.ActionCancel: core.CancelMsg{},
		core.ActionUp:     core.UpMsg{},
	}
	for action, want := range cases {
		if got := run(t, s.Update(action, snap)); got != want {
			t.Fatalf("%s emitted %#v, want %#v", action, got, want)
		}
	}
	if cmd := s.Update(core.ActionSend, snap); cmd != nil {
		t.Fatalf("send is not a flavor action")
	}

	out := ansi.Strip(s.View(50, 20, snap))
	for _, want := range []string{"6 cupcakes", "(•) Vanilla", "Subtotal $15.00", "Next [n]", "Cancel [x]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in flavor view:\n%s", want, out)
		}
	}
}

func TestSummaryShowsOrderAndEmitsSend(t *testing.T) {
	f, labels := newTestFlow(t)
	f.SelectQuantity(12)
	f.Entered(flow.ScreenFlavor)
	f.Next()
	f.Entered(flow.ScreenSummary)
	f.SelectDate(testDates[2])
	s := NewSummary(labels, f.Catalog())
	s.Mounted(f.Snapshot())
	snap := f.Snapshot()

	if _, ok := run(t, s.Update(core.ActionSend, snap)).(core.SendMsg); !ok {
		t.Fatalf("expected send msg")
	}
	s.Update(core.ActionCursorDown, snap)
	if msg := run(t, s.Update(core.ActionSelect, snap)).(core.DateSelectedMsg); msg.Date != testDates[3] {
		t.Fatalf("expected cursor to start on the chosen date, got %q", msg.Date)
	}

	out := ansi.Strip(s.View(50, 24, snap))
	for _, want := range []string{"Quantity: 12 cupcakes", "Flavor: Vanilla", "Pickup date: " + testDates[2], "Total $24.00", "Send [s]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in summary view:\n%s", want, out)
		}
	}
}

func TestViewsFitRequestedSize(t *testing.T) {
	f, labels := newTestFlow(t)
	snap := f.Snapshot()
	for _, s := range []core.Screen{NewStart(labels, f.Catalog()), NewFlavor(labels, f.Catalog()), NewSummary(labels, f.Catalog())} {
		out := s.View(30, 8, snap)
		lines := strings.Split(out, "\n")
		if len(lines) > 8 {
			t.Fatalf("%s rendered %d lines, want <= 8", s.ID(), len(lines))
		}
		for _, l := range lines {
			if ansi.StringWidth(l) > 30 {
				t.Fatalf("%s line wider than 30: %q", s.ID(), l)
			}
		}
	}
}
