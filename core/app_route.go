package core

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/cupcake/internal/share"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case ScreenMountedMsg:
		if m.flow.Entered(msg.Screen) {
			if s := m.screens.Get(msg.Screen); s != nil {
				s.Mounted(m.flow.Snapshot())
			}
		}
		return m, nil
	case QuantitySelectedMsg:
		return m, m.navigated(m.flow.SelectQuantity(msg.Quantity))
	case FlavorSelectedMsg:
		m.flow.SelectFlavor(msg.Flavor)
		return m, nil
	case DateSelectedMsg:
		m.flow.SelectDate(msg.Date)
		return m, nil
	case NextMsg:
		return m, m.navigated(m.flow.Next())
	case UpMsg:
		return m, m.navigated(m.flow.Up())
	case CancelMsg:
		return m, m.navigated(m.flow.Cancel())
	case SendMsg:
		req, ok := m.flow.Send()
		if !ok {
			return m, nil
		}
		m.SetStatus(m.label("Sending", "Sending order..."))
		return m, m.shareCmd(req)
	case ShareResultMsg:
		if !m.flow.Awaiting(msg.Request) {
			m.log.Debug("stale share result", "request_id", msg.Request.ID.String())
			return m, nil
		}
		moved := m.flow.ShareReturned(msg.Request, msg.Err)
		switch {
		case msg.Err == nil:
			m.SetStatus(m.label("OrderSent", "Order sent"))
		case errors.Is(msg.Err, share.ErrNoTarget):
			m.SetStatus(m.label("NoShareTarget", "No app available to send the order"))
		default:
			m.SetError(msg.Err)
		}
		return m, m.navigated(moved)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		scope := m.ActiveScope()
		action := m.keys.ActionFor(msg, scope)
		if action == ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		if action == "" {
			return m, nil
		}
		if s := m.ActiveScreen(); s != nil {
			return m, s.Update(action, m.flow.Snapshot())
		}
	}
	return m, nil
}

// navigated schedules the mount report when the flow moved to a new screen.
func (m Model) navigated(moved bool) tea.Cmd {
	if !moved {
		return nil
	}
	m.log.Debug("screen change", "to", m.flow.Current().String())
	return m.mountCmd(m.flow.Current())
}
