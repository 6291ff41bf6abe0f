// Package flow drives the Start, Flavor and Summary screens over a single
// order and its navigation guard.
package flow

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jask/cupcake/internal/order"
	"github.com/jask/cupcake/internal/share"
)

// Labels is the subset of the localizer the flow needs to compose an order.
type Labels interface {
	T(id string) string
	TData(id string, data map[string]any) string
	Cupcakes(n int) string
}

// Snapshot is everything a screen needs to render.
type Snapshot struct {
	Screen   Screen
	Order    order.Order
	Guard    GuardSnapshot
	Catalog  order.Catalog
	Currency string
}

// Enabled reports whether buttons on the current screen accept presses.
func (s Snapshot) Enabled() bool { return s.Guard.Enabled }

// Price renders the order price with the configured currency symbol.
func (s Snapshot) Price() string { return order.FormatPrice(s.Order.Price, s.Currency) }

// Flow owns the order and the guard. Every method is one discrete user or
// host event and reports whether it took effect; dropped events leave both
// untouched.
type Flow struct {
	state    *order.State
	guard    *Guard
	labels   Labels
	currency string
	current  Screen
	pending  uuid.UUID
	log      *slog.Logger
}

func New(state *order.State, labels Labels, currency string, logger *slog.Logger) *Flow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Flow{
		state:    state,
		guard:    &Guard{},
		labels:   labels,
		currency: currency,
		current:  ScreenStart,
		log:      logger.With("component", "flow"),
	}
}

func (f *Flow) Current() Screen        { return f.current }
func (f *Flow) State() *order.State    { return f.state }
func (f *Flow) Guard() *Guard          { return f.guard }
func (f *Flow) Catalog() order.Catalog { return f.state.Catalog() }

func (f *Flow) Snapshot() Snapshot {
	return Snapshot{
		Screen:   f.current,
		Order:    f.state.Snapshot(),
		Guard:    f.guard.Snapshot(),
		Catalog:  f.state.Catalog(),
		Currency: f.currency,
	}
}

// SelectQuantity records the Start screen choice with the default flavor and
// moves to the Flavor screen.
func (f *Flow) SelectQuantity(quantity int) bool {
	if !f.accept("select-quantity", ScreenStart) || !f.guard.CanNavigate() {
		return false
	}
	if err := f.state.SetQuantityAndFlavor(quantity, f.state.Catalog().DefaultFlavor()); err != nil {
		f.log.Warn("quantity rejected", "quantity", quantity, "err", err)
		return false
	}
	return f.navigate(ScreenFlavor)
}

func (f *Flow) SelectFlavor(flavor string) bool {
	if !f.accept("select-flavor", ScreenFlavor) || !f.guard.Enabled() {
		return false
	}
	if err := f.state.SetFlavor(flavor); err != nil {
		f.log.Warn("flavor rejected", "flavor", flavor, "err", err)
		return false
	}
	return true
}

func (f *Flow) SelectDate(date string) bool {
	if !f.accept("select-date", ScreenSummary) || !f.guard.Enabled() {
		return false
	}
	if err := f.state.SetPickupDate(date); err != nil {
		f.log.Warn("pickup date rejected", "date", date, "err", err)
		return false
	}
	return true
}

// Next moves from Flavor to Summary.
func (f *Flow) Next() bool {
	if !f.accept("next", ScreenFlavor) || !f.guard.Enabled() {
		return false
	}
	return f.navigate(ScreenSummary)
}

// Up navigates back one screen. Returning to Start discards the order.
func (f *Flow) Up() bool {
	if !f.accept("up", ScreenFlavor, ScreenSummary) || !f.guard.Enabled() {
		return false
	}
	target := f.current.Back()
	if target == ScreenStart {
		f.state.Reset()
	}
	return f.navigate(target)
}

// Cancel discards the order and returns to Start.
func (f *Flow) Cancel() bool {
	if !f.accept("cancel", ScreenFlavor, ScreenSummary) || !f.guard.Enabled() {
		return false
	}
	f.state.Reset()
	return f.navigate(ScreenStart)
}

// Send locks inputs and returns the request for the host to dispatch. It
// returns false while a transition is in flight or a previous Send is still
// outstanding.
func (f *Flow) Send() (share.Request, bool) {
	if !f.accept("send", ScreenSummary) || !f.guard.CanNavigate() {
		return share.Request{}, false
	}
	if !f.guard.Lock() {
		f.log.Debug("send dropped", "reason", "inputs locked")
		return share.Request{}, false
	}
	req := share.NewRequest(f.labels.T("NewCupcakeOrder"), f.Summary(f.state.Snapshot()))
	f.pending = req.ID
	f.log.Info("order dispatched", "request_id", req.ID.String(), "quantity", f.state.Quantity(), "flavor", f.state.Flavor())
	return req, true
}

// Awaiting reports whether req is the outstanding Send.
func (f *Flow) Awaiting(req share.Request) bool {
	return f.guard.Locked() && f.pending != uuid.Nil && req.ID == f.pending
}

// ShareReturned is called when the share surface hands control back. Results
// for anything but the outstanding request are ignored. Inputs unlock either
// way; only a delivered order resets the flow to Start. It reports whether
// the flow navigated.
func (f *Flow) ShareReturned(req share.Request, err error) bool {
	if !f.Awaiting(req) {
		f.log.Debug("share result ignored", "request_id", req.ID.String(), "reason", "not outstanding")
		return false
	}
	f.pending = uuid.Nil
	f.guard.Unlock()
	switch {
	case err == nil:
		f.log.Info("order sent", "request_id", req.ID.String())
		f.state.Reset()
		return f.navigate(ScreenStart)
	case errors.Is(err, share.ErrNoTarget):
		f.log.Info("no share target", "request_id", req.ID.String())
	default:
		f.log.Warn("share failed", "request_id", req.ID.String(), "err", err)
	}
	return false
}

// Entered marks the first render of screen. Mount reports for a screen that
// is no longer current are ignored, and a mount with no transition in flight
// leaves the guard alone so it cannot unlock an outstanding Send.
func (f *Flow) Entered(screen Screen) bool {
	if screen != f.current {
		return false
	}
	if f.guard.InFlight() {
		f.guard.Entered()
	}
	return true
}

// Summary composes the plain-text order handed to the share target.
func (f *Flow) Summary(o order.Order) string {
	return f.labels.TData("OrderDetails", map[string]any{
		"Quantity": f.labels.Cupcakes(o.Quantity),
		"Flavor":   o.Flavor,
		"Date":     o.PickupDate,
		"Price":    order.FormatPrice(o.Price, f.currency),
	})
}

func (f *Flow) accept(action string, screens ...Screen) bool {
	for _, s := range screens {
		if s == f.current {
			return true
		}
	}
	f.log.Debug("action ignored", "action", action, "screen", f.current.String())
	return false
}

func (f *Flow) navigate(target Screen) bool {
	if !f.guard.BeginTransition() {
		return false
	}
	f.log.Debug("transition", "from", f.current.String(), "to", target.String())
	f.current = target
	return true
}
