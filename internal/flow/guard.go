package flow

// TransitionState tracks whether a screen change is still settling.
type TransitionState uint8

const (
	TransitionIdle TransitionState = iota
	TransitionInFlight
)

// InputState tracks whether Send and Cancel are disabled while the share
// surface owns the order.
type InputState uint8

const (
	InputsUnlocked InputState = iota
	InputsLocked
)

// Phase names the combination of the two guard flags.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseTransitioning
	PhaseAwaitingExternalResult
	// Back-navigation was issued while a share was still outstanding.
	PhaseTransitioningAwaitingExternalResult
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseAwaitingExternalResult:
		return "awaiting-external-result"
	case PhaseTransitioningAwaitingExternalResult:
		return "transitioning+awaiting-external-result"
	default:
		return "unknown"
	}
}

// GuardSnapshot is what presentation sees of the guard.
type GuardSnapshot struct {
	Transition TransitionState
	Inputs     InputState
	Phase      Phase
	Enabled    bool
}

// Guard debounces rapid repeated taps. The two flags guard different
// actions and may both be set.
type Guard struct {
	transition TransitionState
	inputs     InputState
}

// BeginTransition starts a screen change. A second request while one is in
// flight is dropped and reports false.
func (g *Guard) BeginTransition() bool {
	if g.transition == TransitionInFlight {
		return false
	}
	g.transition = TransitionInFlight
	return true
}

func (g *Guard) CanNavigate() bool { return g.transition == TransitionIdle }

// Lock disables Send and Cancel. It reports false when already locked.
func (g *Guard) Lock() bool {
	if g.inputs == InputsLocked {
		return false
	}
	g.inputs = InputsLocked
	return true
}

func (g *Guard) Unlock()        { g.inputs = InputsUnlocked }
func (g *Guard) Locked() bool   { return g.inputs == InputsLocked }
func (g *Guard) InFlight() bool { return g.transition == TransitionInFlight }

// Entered clears both flags once a screen has rendered.
func (g *Guard) Entered() {
	g.transition = TransitionIdle
	g.inputs = InputsUnlocked
}

// Enabled is the single flag handed to presentation for buttons.
func (g *Guard) Enabled() bool {
	return g.transition == TransitionIdle && g.inputs == InputsUnlocked
}

func (g *Guard) Phase() Phase {
	switch {
	case g.InFlight() && g.Locked():
		return PhaseTransitioningAwaitingExternalResult
	case g.InFlight():
		return PhaseTransitioning
	case g.Locked():
		return PhaseAwaitingExternalResult
	default:
		return PhaseIdle
	}
}

func (g *Guard) Snapshot() GuardSnapshot {
	return GuardSnapshot{
		Transition: g.transition,
		Inputs:     g.inputs,
		Phase:      g.Phase(),
		Enabled:    g.Enabled(),
	}
}
