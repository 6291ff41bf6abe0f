package core

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/cupcake/internal/flow"
	"github.com/jask/cupcake/internal/locale"
	"github.com/jask/cupcake/internal/order"
	"github.com/jask/cupcake/internal/share"
)

var testDates = []string{"Wed Oct 14", "Thu Oct 15", "Fri Oct 16", "Sat Oct 17"}

type harness struct {
	m       Model
	start   *fakeScreen
	flavor  *fakeScreen
	summary *fakeScreen
	shares  []share.Request
	result  error
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	labels, err := locale.New("en")
	if err != nil {
		t.Fatalf("locale: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	state := order.NewState(order.NewCatalog(labels.Flavors(), testDates), order.DefaultPricing())
	h := &harness{
		start: &fakeScreen{id: flow.ScreenStart, scope: ScopeStart, emit: map[string]tea.Msg{
			ActionSelect: QuantitySelectedMsg{Quantity: 6},
		}},
		flavor: &fakeScreen{id: flow.ScreenFlavor, scope: ScopeFlavor, emit: map[string]tea.Msg{
			ActionSelect: FlavorSelectedMsg{Flavor: "Chocolate"},
			ActionNext:   NextMsg{},
			ActionCancel: CancelMsg{},
			ActionUp:     UpMsg{},
		}},
		summary: &fakeScreen{id: flow.ScreenSummary, scope: ScopeSummary, emit: map[string]tea.Msg{
			ActionSelect: DateSelectedMsg{Date: testDates[0]},
			ActionSend:   SendMsg{},
			ActionCancel: CancelMsg{},
			ActionUp:     UpMsg{},
		}},
	}
	sharer := share.Func(func(_ context.Context, req share.Request) error {
		h.shares = append(h.shares, req)
		return h.result
	})
	h.m = NewModel(Options{
		Flow:    flow.New(state, labels, "$", logger),
		Screens: NewScreenSet(h.start, h.flavor, h.summary),
		Sharer:  sharer,
		Labels:  labels,
		AppName: "Cupcake",
		Logger:  logger,
	})
	h.send(h.m.Init()())
	return h
}

// send feeds msg to the model and returns the follow-up command.
func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

// settle runs cmd and every command it produces.
func (h *harness) settle(cmd tea.Cmd) {
	for cmd != nil {
		cmd = h.send(cmd())
	}
}

func (h *harness) press(k tea.KeyMsg) tea.Cmd {
	return h.send(k)
}

func (h *harness) toSummary(t *testing.T) {
	t.Helper()
	h.settle(h.press(tea.KeyMsg{Type: tea.KeyEnter}))
	h.settle(h.press(runeKey('n')))
	if got := h.m.Flow().Current(); got != flow.ScreenSummary {
		t.Fatalf("current = %s, want summary", got)
	}
}

func TestInitMountsStart(t *testing.T) {
	h := newHarness(t)
	if h.start.mounted != 1 {
		t.Fatalf("start mounted %d times, want 1", h.start.mounted)
	}
	if h.m.Flow().Guard().Phase() != flow.PhaseIdle {
		t.Fatalf("phase = %s, want idle", h.m.Flow().Guard().Phase())
	}
}

func TestKeysRouteToActiveScreen(t *testing.T) {
	h := newHarness(t)
	h.press(runeKey('j'))
	if len(h.start.actions) != 1 || h.start.actions[0] != ActionCursorDown {
		t.Fatalf("start actions = %v", h.start.actions)
	}
	if cmd := h.press(runeKey('s')); cmd != nil {
		t.Fatalf("send key should not resolve on start")
	}
	if len(h.flavor.actions) != 0 {
		t.Fatalf("inactive screen got keys: %v", h.flavor.actions)
	}
}

func TestDoubleTapBeforeMountNavigatesOnce(t *testing.T) {
	h := newHarness(t)
	mount := h.press(tea.KeyMsg{Type: tea.KeyEnter})
	mount = h.send(mount())
	if mount == nil {
		t.Fatalf("expected mount command after navigation")
	}
	if h.m.Flow().Current() != flow.ScreenFlavor {
		t.Fatalf("expected flavor screen")
	}
	if cmd := h.send(QuantitySelectedMsg{Quantity: 12}); cmd != nil {
		t.Fatalf("second tap while transitioning should be dropped")
	}
	if cmd := h.send(NextMsg{}); cmd != nil {
		t.Fatalf("next before mount should be dropped")
	}
	if q := h.m.Flow().State().Quantity(); q != 6 {
		t.Fatalf("quantity = %d, want 6", q)
	}
	h.settle(mount)
	if h.flavor.mounted != 1 {
		t.Fatalf("flavor mounted %d times, want 1", h.flavor.mounted)
	}
	h.settle(h.press(runeKey('n')))
	if h.m.Flow().Current() != flow.ScreenSummary {
		t.Fatalf("expected summary after mount")
	}
}

func TestSendInvokesSharerOnceAndResets(t *testing.T) {
	h := newHarness(t)
	h.toSummary(t)

	shareCmd := h.press(runeKey('s'))
	shareCmd = h.send(shareCmd())
	if shareCmd == nil {
		t.Fatalf("expected share command")
	}
	if h.m.status != "Sending order..." {
		t.Fatalf("status = %q", h.m.status)
	}
	if !strings.Contains(h.m.View(), "Sending order...") {
		t.Fatalf("expected sending popup while locked")
	}
	if cmd := h.send(SendMsg{}); cmd != nil {
		t.Fatalf("second send while locked should be dropped")
	}

	h.settle(shareCmd)
	if len(h.shares) != 1 {
		t.Fatalf("sharer called %d times, want 1", len(h.shares))
	}
	if !strings.Contains(h.shares[0].Text, "6 cupcakes") || h.shares[0].Subject != "New Cupcake Order" {
		t.Fatalf("unexpected request %+v", h.shares[0])
	}
	if h.m.Flow().Current() != flow.ScreenStart || !h.m.Flow().State().Snapshot().IsZero() {
		t.Fatalf("expected reset to start after a sent order")
	}
	if h.m.status != "Order sent" || h.m.statusErr {
		t.Fatalf("status = %q err=%v", h.m.status, h.m.statusErr)
	}
	if h.m.Flow().Guard().Phase() != flow.PhaseIdle {
		t.Fatalf("phase = %s, want idle", h.m.Flow().Guard().Phase())
	}
	if h.start.mounted != 2 {
		t.Fatalf("start mounted %d times, want 2", h.start.mounted)
	}
}

func TestNoShareTargetKeepsOrder(t *testing.T) {
	h := newHarness(t)
	h.result = share.ErrNoTarget
	h.toSummary(t)

	h.settle(h.press(runeKey('s')))
	if h.m.Flow().Current() != flow.ScreenSummary {
		t.Fatalf("expected to stay on summary")
	}
	if h.m.status != "No app available to send the order" || h.m.statusErr {
		t.Fatalf("status = %q err=%v", h.m.status, h.m.statusErr)
	}
	if !h.m.Flow().Guard().Enabled() {
		t.Fatalf("expected inputs unlocked")
	}
	if h.m.Flow().State().Quantity() != 6 {
		t.Fatalf("order should survive a missing share target")
	}
}

func TestBackIgnoredWhileSending(t *testing.T) {
	h := newHarness(t)
	h.toSummary(t)

	shareCmd := h.send(h.press(runeKey('s'))())
	if shareCmd == nil {
		t.Fatalf("expected share command")
	}
	h.settle(h.press(tea.KeyMsg{Type: tea.KeyEsc}))
	if h.m.Flow().Current() != flow.ScreenSummary {
		t.Fatalf("back while sending moved to %s", h.m.Flow().Current())
	}
	if cmd := h.send(SendMsg{}); cmd != nil {
		t.Fatalf("send accepted while the first share is outstanding")
	}

	stale := ShareResultMsg{Request: share.NewRequest("old", "old")}
	if cmd := h.send(stale); cmd != nil {
		t.Fatalf("stale share result produced a command")
	}
	if !h.m.Flow().Guard().Locked() || h.m.status != "Sending order..." {
		t.Fatalf("stale result changed state: locked=%v status=%q", h.m.Flow().Guard().Locked(), h.m.status)
	}

	h.settle(shareCmd)
	if len(h.shares) != 1 {
		t.Fatalf("sharer called %d times, want 1", len(h.shares))
	}
	if h.m.Flow().Current() != flow.ScreenStart {
		t.Fatalf("expected start after the share returned")
	}
}

func TestShareFailureShowsError(t *testing.T) {
	h := newHarness(t)
	h.result = errors.New("mailer crashed")
	h.toSummary(t)

	h.settle(h.press(runeKey('s')))
	if !h.m.statusErr || !strings.Contains(h.m.status, "mailer crashed") {
		t.Fatalf("status = %q err=%v", h.m.status, h.m.statusErr)
	}
	h.settle(h.press(runeKey('x')))
	if h.m.Flow().Current() != flow.ScreenStart {
		t.Fatalf("expected cancel to work after a failed share")
	}
}

func TestBackFromFlavorResetsOrder(t *testing.T) {
	h := newHarness(t)
	h.settle(h.press(tea.KeyMsg{Type: tea.KeyEnter}))
	h.settle(h.press(tea.KeyMsg{Type: tea.KeyEsc}))
	if h.m.Flow().Current() != flow.ScreenStart {
		t.Fatalf("expected start after back")
	}
	if !h.m.Flow().State().Snapshot().IsZero() {
		t.Fatalf("expected order reset")
	}
}

func TestQuitKeys(t *testing.T) {
	h := newHarness(t)
	cmd := h.press(runeKey('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit msg")
	}
	if h.m.View() != "Goodbye\n" {
		t.Fatalf("unexpected view after quit: %q", h.m.View())
	}
}

func TestViewShowsHeaderAndFooter(t *testing.T) {
	h := newHarness(t)
	h.send(tea.WindowSizeMsg{Width: 120, Height: 12})
	h.settle(h.press(tea.KeyMsg{Type: tea.KeyEnter}))
	out := h.m.View()
	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("view has %d lines, want 12", len(lines))
	}
	if !strings.Contains(lines[0], "←") || !strings.Contains(lines[0], "Cupcake") {
		t.Fatalf("expected back arrow and app name in header, got %q", lines[0])
	}
	if !strings.Contains(out, "screen flavor") {
		t.Fatalf("expected flavor body:\n%s", out)
	}
	if !strings.Contains(lines[len(lines)-1], "back") {
		t.Fatalf("expected back hint in footer, got %q", lines[len(lines)-1])
	}
}
