// Package binding implements the consumer side of the layer stack.
//
// A Binding targets one layer. Its callbacks and reads only see input while
// that layer is the active one and input is not blocked, so consumers of a
// backgrounded layer never have to disable themselves.
package binding

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/inputlayers/internal/action"
	"github.com/ja-he/inputlayers/internal/layer"
)

type subscription struct {
	action action.Action
	phase  action.Phase
	id     action.SubscriptionID
}

// Binding is a consumer's registration of interest in the actions of a single
// layer.
type Binding struct {
	stack *layer.Stack
	group *layer.Group
	info  layer.Info

	subscriptions map[string]subscription
	waits         []*Wait
	tornDown      bool
}

// New returns a pointer to a new Binding for the layer of the given name.
//
// The layer does not need to be on the stack; the binding simply stays inert
// until it is the active layer.
func New(stack *layer.Stack, source action.Source, layerName string) (*Binding, error) {
	g := source.FindGroup(layerName)
	if g == nil {
		log.Error().Str("layer", layerName).Msg("cannot bind unknown layer")
		return nil, fmt.Errorf("%w: '%s'", layer.ErrUnknownLayer, layerName)
	}

	b := &Binding{
		stack:         stack,
		group:         layer.NewGroup(g),
		info:          layer.Info{ID: g.ID(), Name: g.Name()},
		subscriptions: make(map[string]subscription),
	}
	if layers := stack.Layers(); len(layers) > 0 && layers[0].ID == b.info.ID {
		b.info.IsRoot = true
	}
	return b, nil
}

// Layer returns the target layer.
func (b *Binding) Layer() layer.Info {
	return b.info
}

// Active returns whether the target layer is currently the top of the stack.
//
// This compares against the stack on every call rather than tracking the
// stack's notifications, so it is correct even inside other observers.
func (b *Binding) Active() bool {
	if b.tornDown || b.stack.Depth() == 0 {
		return false
	}
	return b.stack.Peek().ID == b.info.ID
}

func (b *Binding) live() bool {
	return b.Active() && !b.stack.InputBlocked()
}

func key(actionName string, phase action.Phase) string {
	return actionName + "." + phase.String()
}

// Register subscribes the callback to every phase in the given mask of the
// named action.
//
// The callback only runs while the binding is live. Registering the same
// action and phase again replaces the earlier callback. Returns false if the
// action does not exist in the target layer or the callback is nil.
func (b *Binding) Register(actionName string, phase action.Phase, callback action.Callback) bool {
	if b.tornDown {
		log.Warn().Str("layer", b.info.Name).Str("action", actionName).Msg("cannot register on torn down binding")
		return false
	}
	if callback == nil {
		log.Warn().Str("layer", b.info.Name).Str("action", actionName).Msg("cannot register nil callback")
		return false
	}

	a, ok := b.group.Resolve(actionName)
	if !ok {
		return false
	}

	gated := func(ctx action.Context) {
		if b.live() {
			callback(ctx)
		}
	}
	for _, single := range phase.Phases() {
		k := key(actionName, single)
		if previous, exists := b.subscriptions[k]; exists {
			previous.action.Unsubscribe(previous.phase, previous.id)
		}
		b.subscriptions[k] = subscription{
			action: a,
			phase:  single,
			id:     a.Subscribe(single, gated),
		}
	}
	log.Trace().Str("layer", b.info.Name).Str("action", actionName).Str("phase", phase.String()).Msg("registered")
	return true
}

// Unregister removes the subscriptions for the given phases of the named
// action. Combinations that were never registered are ignored.
func (b *Binding) Unregister(actionName string, phase action.Phase) {
	for _, single := range phase.Phases() {
		k := key(actionName, single)
		sub, exists := b.subscriptions[k]
		if !exists {
			continue
		}
		sub.action.Unsubscribe(sub.phase, sub.id)
		delete(b.subscriptions, k)
	}
}

// Registered returns the number of cached subscriptions.
func (b *Binding) Registered() int {
	return len(b.subscriptions)
}

// Teardown unsubscribes all callbacks and cancels all pending waits. The
// binding is inert afterwards. Calling it again has no effect.
func (b *Binding) Teardown() {
	if b.tornDown {
		return
	}
	for _, sub := range b.subscriptions {
		sub.action.Unsubscribe(sub.phase, sub.id)
	}
	clear(b.subscriptions)

	for _, w := range b.waits {
		w.Cancel()
	}
	b.waits = nil

	b.tornDown = true
	log.Debug().Str("layer", b.info.Name).Msg("tore down binding")
}

// lookup returns the named action if the binding is live.
func (b *Binding) lookup(actionName string) (action.Action, bool) {
	if !b.live() {
		return nil, false
	}
	return b.group.Resolve(actionName)
}

// ReadValue returns the current value of the named action.
// If the binding is not live or there is no such action, it returns the zero
// value and false.
func (b *Binding) ReadValue(actionName string) (action.Value, bool) {
	a, ok := b.lookup(actionName)
	if !ok {
		return action.Value{}, false
	}
	return a.ReadValue(), true
}

// ReadButton returns whether the named action is held.
func (b *Binding) ReadButton(actionName string) bool {
	a, ok := b.lookup(actionName)
	return ok && a.IsInProgress()
}

// ReadButtonDown returns whether the named action was pressed this frame.
func (b *Binding) ReadButtonDown(actionName string) bool {
	a, ok := b.lookup(actionName)
	return ok && a.WasPressedThisFrame()
}

// ReadButtonUp returns whether the named action was released this frame.
func (b *Binding) ReadButtonUp(actionName string) bool {
	a, ok := b.lookup(actionName)
	return ok && a.WasReleasedThisFrame()
}

// Readable are the types an action value can be read as.
type Readable interface {
	bool | float64 | [2]float64
}

// Read returns the current value of the named action as the given type.
func Read[T Readable](b *Binding, actionName string) (T, bool) {
	var result T
	v, ok := b.ReadValue(actionName)
	if !ok {
		return result, false
	}
	switch p := any(&result).(type) {
	case *bool:
		*p = v.Bool()
	case *float64:
		*p = v.Float()
	case *[2]float64:
		*p = v.Vector()
	}
	return result, true
}
