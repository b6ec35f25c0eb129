package binding

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/inputlayers/internal/action"
)

// WaitState is the state of a Wait.
type WaitState int

const (
	// Pending means the awaited condition has not been met yet.
	Pending WaitState = iota
	// Resolved means the awaited condition was met.
	Resolved
	// Cancelled means the wait ended without the condition being met.
	Cancelled
)

func (s WaitState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Resolved:
		return "resolved"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Wait waits for a button condition of an action.
//
// Nothing happens in the background: the host polls the wait once per frame
// until it is no longer pending. A consumer that stops polling has, in effect,
// abandoned the wait.
type Wait struct {
	state     WaitState
	condition func() bool
}

// Poll checks the awaited condition and returns the resulting state.
// Once resolved or cancelled, a wait stays that way.
func (w *Wait) Poll() WaitState {
	if w.state == Pending && w.condition() {
		w.state = Resolved
	}
	return w.state
}

// State returns the state as of the last poll.
func (w *Wait) State() WaitState { return w.state }

// Cancel cancels a pending wait.
func (w *Wait) Cancel() {
	if w.state == Pending {
		w.state = Cancelled
	}
}

// WaitButton returns a wait for the named action to be pressed.
func (b *Binding) WaitButton(actionName string) *Wait {
	return b.wait(actionName, func(a action.Action) func() bool { return a.IsPressed })
}

// WaitButtonDown returns a wait for the named action to be pressed during a
// frame.
func (b *Binding) WaitButtonDown(actionName string) *Wait {
	return b.wait(actionName, func(a action.Action) func() bool { return a.WasPressedThisFrame })
}

// WaitButtonUp returns a wait for the named action to be released during a
// frame.
func (b *Binding) WaitButtonUp(actionName string) *Wait {
	return b.wait(actionName, func(a action.Action) func() bool { return a.WasReleasedThisFrame })
}

// wait creates a wait on the condition of the named action.
// If the binding is not live or there is no such action, the wait is
// cancelled from the start. The condition only counts while the binding is
// live.
func (b *Binding) wait(actionName string, condition func(a action.Action) func() bool) *Wait {
	a, ok := b.lookup(actionName)
	if !ok {
		log.Debug().Str("layer", b.info.Name).Str("action", actionName).Msg("wait cancelled on creation")
		return &Wait{state: Cancelled}
	}

	met := condition(a)
	w := &Wait{state: Pending, condition: func() bool { return b.live() && met() }}
	b.prune()
	b.waits = append(b.waits, w)
	return w
}

// prune drops waits that are no longer pending.
func (b *Binding) prune() {
	pending := b.waits[:0]
	for _, w := range b.waits {
		if w.state == Pending {
			pending = append(pending, w)
		}
	}
	clear(b.waits[len(pending):])
	b.waits = pending
}
