package core

const (
	ScopeStart   = "screen:start"
	ScopeFlavor  = "screen:flavor"
	ScopeSummary = "screen:summary"
)

const (
	ActionQuit       = "quit"
	ActionCursorUp   = "cursor-up"
	ActionCursorDown = "cursor-down"
	ActionSelect     = "select"
	ActionNext       = "next"
	ActionUp         = "up"
	ActionCancel     = "cancel"
	ActionSend       = "send"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"k", "up"}, Action: ActionCursorUp, Description: "prev", Scopes: []string{"*"}},
		{Keys: []string{"j", "down"}, Action: ActionCursorDown, Description: "next item", Scopes: []string{"*"}},
		{Keys: []string{"enter"}, Action: ActionSelect, Description: "choose", Scopes: []string{"*"}},
		{Keys: []string{"n", "tab"}, Action: ActionNext, Description: "next", Scopes: []string{ScopeFlavor}},
		{Keys: []string{"s"}, Action: ActionSend, Description: "send", Scopes: []string{ScopeSummary}},
		{Keys: []string{"x"}, Action: ActionCancel, Description: "cancel", Scopes: []string{ScopeFlavor, ScopeSummary}},
		{Keys: []string{"esc", "backspace"}, Action: ActionUp, Description: "back", Scopes: []string{ScopeFlavor, ScopeSummary}},
		{Keys: []string{"q"}, Action: ActionQuit, Description: "quit", Scopes: []string{"*"}},
	}
}

// ApplyActionKeybindings replaces the keys of every binding whose action
// appears in actionKeys.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys := actionKeys[b.Action]; len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
