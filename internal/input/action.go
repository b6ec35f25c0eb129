package input

import (
	"github.com/ja-he/inputlayers/internal/action"
)

type subscription struct {
	id       action.SubscriptionID
	callback action.Callback
}

// Action is a frame-driven implementation of action.Action.
//
// It is actuated by Actuate calls during a frame and released by the owning
// Source once it has not been actuated for long enough.
type Action struct {
	name    string
	kind    action.Kind
	enabled bool

	value   action.Value
	pressed bool

	pressedThisFrame  bool
	releasedThisFrame bool
	actuatedThisFrame bool
	idleFrames        int

	nextID        action.SubscriptionID
	subscriptions map[action.Phase][]subscription
}

// NewAction returns a pointer to a new, disabled Action.
func NewAction(name string, kind action.Kind) *Action {
	return &Action{
		name:          name,
		kind:          kind,
		value:         action.Zero(kind),
		subscriptions: make(map[action.Phase][]subscription),
	}
}

// Name returns the action's name.
func (a *Action) Name() string { return a.name }

// Kind returns the kind of value the action produces.
func (a *Action) Kind() action.Kind { return a.kind }

// Enable enables the action, allowing it to be actuated.
func (a *Action) Enable() { a.enabled = true }

// Disable disables the action, releasing it if it is pressed.
func (a *Action) Disable() {
	a.Release()
	a.enabled = false
}

// Enabled returns whether the action is enabled.
func (a *Action) Enabled() bool { return a.enabled }

// Subscribe registers the callback for the given phase.
// If the mask holds several phases, the callback is registered for each of
// them under the same ID.
func (a *Action) Subscribe(phase action.Phase, callback action.Callback) action.SubscriptionID {
	a.nextID++
	id := a.nextID
	for _, single := range phase.Phases() {
		a.subscriptions[single] = append(a.subscriptions[single], subscription{id: id, callback: callback})
	}
	return id
}

// Unsubscribe removes the subscription of the given ID from the given phase.
func (a *Action) Unsubscribe(phase action.Phase, id action.SubscriptionID) {
	for _, single := range phase.Phases() {
		subs := a.subscriptions[single]
		for i := range subs {
			if subs[i].id == id {
				a.subscriptions[single] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Subscriptions returns the number of subscriptions for the given single
// phase.
func (a *Action) Subscriptions(phase action.Phase) int {
	return len(a.subscriptions[phase])
}

// ReadValue returns the current value.
func (a *Action) ReadValue() action.Value { return a.value }

// IsInProgress returns whether the action has started and not been canceled.
func (a *Action) IsInProgress() bool { return a.pressed }

// IsPressed returns whether the action is actuated with a non-zero value.
func (a *Action) IsPressed() bool { return a.pressed && !a.value.IsZero() }

// WasPressedThisFrame returns whether the action started during this frame.
func (a *Action) WasPressedThisFrame() bool { return a.pressedThisFrame }

// WasReleasedThisFrame returns whether the action was canceled during this
// frame.
func (a *Action) WasReleasedThisFrame() bool { return a.releasedThisFrame }

// Actuate feeds a value into the action.
// Several actuations within the same frame add up, clamped to [-1,1].
// Returns whether the action was enabled to take the actuation.
func (a *Action) Actuate(v action.Value) bool {
	if !a.enabled {
		return false
	}

	if a.actuatedThisFrame {
		a.value = clamp(a.value.Add(v))
	} else {
		a.value = clamp(action.Value{Kind: a.kind, X: v.X, Y: v.Y})
	}
	a.actuatedThisFrame = true
	a.idleFrames = 0

	if !a.pressed {
		a.pressed = true
		a.pressedThisFrame = true
		a.fire(action.Started)
		// a started callback may have disabled, and thereby released, the action
		if !a.enabled {
			return true
		}
	}
	a.fire(action.Performed)
	return true
}

// Release ends an actuation, if there is one.
func (a *Action) Release() {
	if !a.pressed {
		return
	}
	a.pressed = false
	a.releasedThisFrame = true
	a.value = action.Zero(a.kind)
	a.fire(action.Canceled)
}

// beginFrame clears the per-frame flags and releases the action if it has
// been idle for more than holdFrames frames.
func (a *Action) beginFrame(holdFrames int) {
	a.pressedThisFrame = false
	a.releasedThisFrame = false
	if a.actuatedThisFrame {
		a.actuatedThisFrame = false
		return
	}
	if a.pressed {
		a.idleFrames++
		if a.idleFrames > holdFrames {
			a.Release()
		}
	}
}

func (a *Action) fire(phase action.Phase) {
	subs := a.subscriptions[phase]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]subscription, len(subs))
	copy(snapshot, subs)
	ctx := action.Context{Action: a.name, Phase: phase, Value: a.value}
	for _, sub := range snapshot {
		sub.callback(ctx)
	}
}

func clamp(v action.Value) action.Value {
	c := func(f float64) float64 {
		switch {
		case f > 1:
			return 1
		case f < -1:
			return -1
		default:
			return f
		}
	}
	v.X, v.Y = c(v.X), c(v.Y)
	return v
}
