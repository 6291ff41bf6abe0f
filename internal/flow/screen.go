package flow

// Screen identifies one of the three order screens.
type Screen int

const (
	ScreenStart Screen = iota
	ScreenFlavor
	ScreenSummary
)

func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenFlavor:
		return "flavor"
	case ScreenSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// Back is the screen Up navigates to. Start has no parent and returns itself.
func (s Screen) Back() Screen {
	switch s {
	case ScreenSummary:
		return ScreenFlavor
	default:
		return ScreenStart
	}
}
