// Package action describes the boundary to an action source, i.E. whatever
// turns raw input into named logical actions organized in named groups.
//
// Nothing in here knows about layers; the layer stack only ever consumes
// these interfaces.
package action

import (
	"github.com/google/uuid"
)

// Source is a named collection of action groups.
type Source interface {
	// Groups returns all groups in their definition order.
	Groups() []Group

	// FindGroup returns the group of the given name or nil, if there is none.
	FindGroup(name string) Group

	// FindGroupByID returns the group of the given identifier or nil, if there
	// is none.
	FindGroupByID(id uuid.UUID) Group
}

// Group is a named group of actions that can be enabled and disabled as a
// whole.
type Group interface {
	ID() uuid.UUID
	Name() string

	// FindAction returns the action of the given name or nil, if this group
	// does not contain it.
	FindAction(name string) Action

	Enable()
	Disable()
	Enabled() bool
}

// Action is a single logical input signal.
//
// It can be read as a value and observed for its phase transitions
// (started, performed, canceled).
type Action interface {
	Name() string

	Enable()
	Disable()
	Enabled() bool

	// Subscribe registers the callback for the given phase.
	// The returned ID is needed to unsubscribe again.
	Subscribe(phase Phase, callback Callback) SubscriptionID

	// Unsubscribe removes the subscription of the given ID from the given
	// phase. Unknown IDs are ignored.
	Unsubscribe(phase Phase, id SubscriptionID)

	ReadValue() Value

	// IsInProgress returns whether the action has started and not yet been
	// canceled.
	IsInProgress() bool
	// IsPressed returns whether the action is actuated at all.
	IsPressed() bool
	WasPressedThisFrame() bool
	WasReleasedThisFrame() bool
}

// SubscriptionID identifies one subscription of a callback on an action.
type SubscriptionID uint64

// Callback is called on phase transitions of an action.
type Callback func(ctx Context)

// Context is what a Callback gets to see about the transition.
type Context struct {
	Action string
	Phase  Phase
	Value  Value
}

var groupNamespace = uuid.MustParse("7c0e4b8e-2f1d-4a51-9b7e-59a4d1c8e3f0")

// GroupID derives the stable identifier for a group of the given name.
func GroupID(name string) uuid.UUID {
	return uuid.NewSHA1(groupNamespace, []byte(name))
}
