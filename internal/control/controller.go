// Package control provides the entry point application code uses to switch
// input layers.
package control

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/inputlayers/internal/layer"
)

// Controller is a facade over a layer.Stack.
//
// It forwards all operations to the stack and re-broadcasts the stack's push
// and pop notifications to its own subscribers. It holds no state of its own
// beyond those subscribers.
type Controller struct {
	stack       *layer.Stack
	subscribers []layer.Observer
}

// NewController returns a pointer to a new Controller for the given stack.
func NewController(stack *layer.Stack) *Controller {
	c := &Controller{stack: stack}
	stack.AddObserver(c)
	return c
}

// Close detaches the controller from its stack. Subscribers are no longer
// notified afterwards.
func (c *Controller) Close() {
	c.stack.RemoveObserver(c)
	c.subscribers = nil
}

// Subscribe registers an observer for push and pop notifications.
// Observers that are not layer.Comparable are rejected.
func (c *Controller) Subscribe(o layer.Observer) {
	if !layer.Comparable(o) {
		log.Error().Str("observer", fmt.Sprintf("%T", o)).Msg("cannot subscribe observer of uncomparable type")
		return
	}
	for _, s := range c.subscribers {
		if s == o {
			return
		}
	}
	c.subscribers = append(c.subscribers, o)
}

// Unsubscribe removes a previously subscribed observer.
func (c *Controller) Unsubscribe(o layer.Observer) {
	if !layer.Comparable(o) {
		return
	}
	for i, s := range c.subscribers {
		if s == o {
			c.subscribers = append(c.subscribers[:i:i], c.subscribers[i+1:]...)
			return
		}
	}
}

// LayerPushed re-broadcasts a push notification of the stack.
func (c *Controller) LayerPushed(top layer.Info) {
	c.broadcast(func(o layer.Observer) { o.LayerPushed(top) })
}

// LayerPopped re-broadcasts a pop notification of the stack.
func (c *Controller) LayerPopped(top layer.Info) {
	c.broadcast(func(o layer.Observer) { o.LayerPopped(top) })
}

func (c *Controller) broadcast(f func(o layer.Observer)) {
	snapshot := make([]layer.Observer, len(c.subscribers))
	copy(snapshot, c.subscribers)
	for _, o := range snapshot {
		f(o)
	}
}

// Push pushes the named layer, ignoring whether that succeeded.
func (c *Controller) Push(name string) { c.stack.Push(name) }

// TryPush pushes the named layer and returns whether that succeeded.
func (c *Controller) TryPush(name string) bool { return c.stack.Push(name) }

// Pop pops the active layer and returns whether that succeeded.
func (c *Controller) Pop() bool { return c.stack.Pop() }

// PopAllExceptRoot pops all layers but the root.
func (c *Controller) PopAllExceptRoot() { c.stack.PopAllExceptRoot() }

// PopAndPush replaces the active layer with the named one.
func (c *Controller) PopAndPush(name string) bool { return c.stack.PopAndPush(name) }

// Peek returns the active layer.
func (c *Controller) Peek() layer.Info { return c.stack.Peek() }

// Layers returns the layers on the stack from bottom to top.
func (c *Controller) Layers() []layer.Info { return c.stack.Layers() }

// Locked returns whether the stack is locked.
func (c *Controller) Locked() bool { return c.stack.Locked() }

// SetLocked locks or unlocks the stack.
func (c *Controller) SetLocked(locked bool) { c.stack.SetLocked(locked) }

// EnableControls is the global input block switch.
func (c *Controller) EnableControls(enable bool) { c.stack.EnableControls(enable) }

// InputBlocked returns whether input is currently blocked.
func (c *Controller) InputBlocked() bool { return c.stack.InputBlocked() }
