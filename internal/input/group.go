package input

import (
	"github.com/google/uuid"

	"github.com/ja-he/inputlayers/internal/action"
)

// Group is a named group of Actions; implements action.Group.
type Group struct {
	id      uuid.UUID
	name    string
	enabled bool

	actions []*Action
	byName  map[string]*Action
}

func newGroup(name string) *Group {
	return &Group{
		id:     action.GroupID(name),
		name:   name,
		byName: make(map[string]*Action),
	}
}

// ID returns the group's identifier, derived from its name.
func (g *Group) ID() uuid.UUID { return g.id }

// Name returns the group's name.
func (g *Group) Name() string { return g.name }

// FindAction returns the action of the given name or nil.
func (g *Group) FindAction(name string) action.Action {
	a, ok := g.byName[name]
	if !ok {
		return nil
	}
	return a
}

// Action returns the concrete action of the given name or nil.
func (g *Group) Action(name string) *Action {
	return g.byName[name]
}

// Actions returns the group's actions in definition order.
func (g *Group) Actions() []*Action {
	return g.actions
}

// Enable enables the group and all of its actions.
func (g *Group) Enable() {
	g.enabled = true
	for _, a := range g.actions {
		a.Enable()
	}
}

// Disable disables the group and all of its actions.
func (g *Group) Disable() {
	g.enabled = false
	for _, a := range g.actions {
		a.Disable()
	}
}

// Enabled returns whether the group is enabled.
func (g *Group) Enabled() bool { return g.enabled }
