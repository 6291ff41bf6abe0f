package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/cupcake/internal/flow"
	"github.com/jask/cupcake/internal/share"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

// Discrete user actions reported by screens.
type (
	QuantitySelectedMsg struct{ Quantity int }
	FlavorSelectedMsg   struct{ Flavor string }
	DateSelectedMsg     struct{ Date string }
	NextMsg             struct{}
	UpMsg               struct{}
	CancelMsg           struct{}
	SendMsg             struct{}
)

// ScreenMountedMsg reports that the screen finished its first render after
// a transition.
type ScreenMountedMsg struct {
	Screen flow.Screen
}

// ShareResultMsg is delivered when the share target hands control back.
type ShareResultMsg struct {
	Request share.Request
	Err     error
}

// Emit wraps msg in a command.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
