package action

import (
	"strings"
)

// Phase is a bitmask of action phase transitions.
type Phase uint8

const (
	// None is the empty mask.
	None Phase = 0
	// Started is set when an action begins being actuated.
	Started Phase = 1 << 0
	// Canceled is set when an action stops being actuated.
	Canceled Phase = 1 << 1
	// Performed is set when an action's interaction completes.
	Performed Phase = 1 << 2
	// All combines every phase.
	All = Started | Canceled | Performed
)

// Has returns whether all phases in other are set in p.
func (p Phase) Has(other Phase) bool {
	return other != None && p&other == other
}

// Phases returns the single phases set in p, in the order started, canceled,
// performed.
func (p Phase) Phases() []Phase {
	result := make([]Phase, 0, 3)
	for _, single := range []Phase{Started, Canceled, Performed} {
		if p&single != 0 {
			result = append(result, single)
		}
	}
	return result
}

func (p Phase) String() string {
	switch p {
	case None:
		return "none"
	case Started:
		return "started"
	case Canceled:
		return "canceled"
	case Performed:
		return "performed"
	}
	names := make([]string, 0, 3)
	for _, single := range p.Phases() {
		names = append(names, single.String())
	}
	return strings.Join(names, "|")
}
