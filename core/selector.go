package core

import "slices"

type SelectorAction int

const (
	SelectorActionNone SelectorAction = iota
	SelectorActionMoved
	SelectorActionSelected
)

type SelectorResult struct {
	Action SelectorAction
	Index  int
	Item   string
}

// Selector is the cursor over a fixed option list shared by the radio
// groups on every screen.
type Selector struct {
	items  []string
	cursor int
}

func NewSelector(items []string) *Selector {
	return &Selector{items: slices.Clone(items)}
}

func (s *Selector) Items() []string { return slices.Clone(s.items) }
func (s *Selector) Cursor() int     { return s.cursor }

// Focus moves the cursor onto item when present.
func (s *Selector) Focus(item string) {
	if idx := slices.Index(s.items, item); idx >= 0 {
		s.cursor = idx
	}
}

func (s *Selector) Current() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	return s.items[min(max(s.cursor, 0), len(s.items)-1)], true
}

func (s *Selector) HandleAction(action string) SelectorResult {
	switch action {
	case ActionCursorUp:
		if s.cursor > 0 {
			s.cursor--
			return SelectorResult{Action: SelectorActionMoved, Index: s.cursor}
		}
	case ActionCursorDown:
		if s.cursor < len(s.items)-1 {
			s.cursor++
			return SelectorResult{Action: SelectorActionMoved, Index: s.cursor}
		}
	case ActionSelect:
		if item, ok := s.Current(); ok {
			return SelectorResult{Action: SelectorActionSelected, Index: s.cursor, Item: item}
		}
	}
	return SelectorResult{Action: SelectorActionNone, Index: s.cursor}
}
