package core

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/cupcake/internal/flow"
	"github.com/jask/cupcake/internal/share"
)

// Screen renders one flow screen from a snapshot. Key presses arrive as
// resolved actions; a screen reports user choices only by returning action
// message commands and keeps no order state of its own.
type Screen interface {
	ID() flow.Screen
	Title() string
	Scope() string
	// ShowUp reports whether the header draws a back arrow.
	ShowUp() bool
	View(width, height int, snap flow.Snapshot) string
	Update(action string, snap flow.Snapshot) tea.Cmd
	// Mounted runs when the screen finished its first render after a transition.
	Mounted(snap flow.Snapshot)
}

// Labels resolves status line texts.
type Labels interface {
	T(id string) string
}

type Options struct {
	Context         context.Context
	Flow            *flow.Flow
	Screens         ScreenSet
	Keys            *KeyRegistry
	Sharer          share.Sharer
	Labels          Labels
	AppName         string
	TransitionDelay time.Duration
	Logger          *slog.Logger
}

type Model struct {
	width     int
	height    int
	ctx       context.Context
	flow      *flow.Flow
	screens   ScreenSet
	keys      *KeyRegistry
	sharer    share.Sharer
	labels    Labels
	appName   string
	delay     time.Duration
	status    string
	statusErr bool
	quitting  bool
	log       *slog.Logger
}

func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	keys := opts.Keys
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	sharer := opts.Sharer
	if sharer == nil {
		sharer = share.None{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		ctx:     ctx,
		flow:    opts.Flow,
		screens: opts.Screens,
		keys:    keys,
		sharer:  sharer,
		labels:  opts.Labels,
		appName: opts.AppName,
		delay:   opts.TransitionDelay,
		status:  "Ready",
		width:   60,
		height:  24,
		log:     logger.With("component", "tui"),
	}
}

func (m Model) Init() tea.Cmd {
	return m.mountCmd(m.flow.Current())
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) Flow() *flow.Flow { return m.flow }

func (m Model) ActiveScreen() Screen {
	return m.screens.Get(m.flow.Current())
}

func (m Model) ActiveScope() string {
	if s := m.ActiveScreen(); s != nil {
		return s.Scope()
	}
	return "app"
}

// mountCmd reports target as rendered once the transition delay has passed.
func (m Model) mountCmd(target flow.Screen) tea.Cmd {
	if m.delay <= 0 {
		return Emit(ScreenMountedMsg{Screen: target})
	}
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return ScreenMountedMsg{Screen: target}
	})
}

// shareCmd runs the share target off the update loop.
func (m Model) shareCmd(req share.Request) tea.Cmd {
	ctx, sharer := m.ctx, m.sharer
	return func() tea.Msg {
		return ShareResultMsg{Request: req, Err: sharer.Share(ctx, req)}
	}
}

func (m Model) label(id, fallback string) string {
	if m.labels == nil {
		return fallback
	}
	return m.labels.T(id)
}
