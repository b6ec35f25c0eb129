package layer

import (
	"reflect"
)

// Observer is notified of successful stack transitions.
//
// Notifications are delivered synchronously after the stack and the enabled
// action group are already consistent with the event.
type Observer interface {
	// LayerPushed is called with the new top of the stack.
	LayerPushed(top Info)
	// LayerPopped is called with the new top of the stack, i.E. the layer that
	// became active again, not the removed one.
	LayerPopped(top Info)
}

// Comparable reports whether o can be told apart from other observers. Nil
// observers and observers whose dynamic type is not comparable, e.g. structs
// holding a slice, cannot be registered.
func Comparable(o Observer) bool {
	t := reflect.TypeOf(o)
	return t != nil && t.Comparable()
}

// RejectionObserver can optionally be implemented by an Observer to learn
// about rejected transitions.
type RejectionObserver interface {
	LayerRejected(op Op, name string, reason error)
}

// ObserverFuncs adapts functions to the Observer interface.
// Either function may be nil. Register it by pointer.
type ObserverFuncs struct {
	Pushed func(top Info)
	Popped func(top Info)
}

// LayerPushed calls o.Pushed, if set.
func (o *ObserverFuncs) LayerPushed(top Info) {
	if o.Pushed != nil {
		o.Pushed(top)
	}
}

// LayerPopped calls o.Popped, if set.
func (o *ObserverFuncs) LayerPopped(top Info) {
	if o.Popped != nil {
		o.Popped(top)
	}
}

// Op names a stack operation.
type Op string

const (
	OpPush Op = "push"
	OpPop  Op = "pop"
)
