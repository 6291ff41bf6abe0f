package core

import (
	"fmt"

	"github.com/jask/cupcake/internal/flow"
)

// ScreenSet maps each flow screen to its presentation.
type ScreenSet struct {
	items map[flow.Screen]Screen
}

func NewScreenSet(screens ...Screen) ScreenSet {
	set := ScreenSet{items: make(map[flow.Screen]Screen, len(screens))}
	for _, s := range screens {
		if s == nil {
			continue
		}
		if other, exists := set.items[s.ID()]; exists {
			panic(fmt.Sprintf("screen %s registered twice (%q and %q)", s.ID(), other.Title(), s.Title()))
		}
		set.items[s.ID()] = s
	}
	return set
}

func (s ScreenSet) Get(id flow.Screen) Screen {
	return s.items[id]
}

func (s ScreenSet) Len() int {
	return len(s.items)
}
