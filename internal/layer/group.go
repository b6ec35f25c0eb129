package layer

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/inputlayers/internal/action"
)

// Group is a handle to one action group that caches action lookups.
//
// Once an action name is resolved, the same handle is returned for it for the
// lifetime of the Group.
type Group struct {
	group   action.Group
	actions map[string]action.Action
}

// NewGroup returns a pointer to a new Group for the given action group.
func NewGroup(group action.Group) *Group {
	return &Group{
		group:   group,
		actions: make(map[string]action.Action),
	}
}

// ID returns the identifier of the underlying action group.
func (g *Group) ID() uuid.UUID { return g.group.ID() }

// Name returns the name of the underlying action group.
func (g *Group) Name() string { return g.group.Name() }

// Resolve returns the action of the given name.
// A lookup failure is logged and reported as not ok.
func (g *Group) Resolve(actionName string) (action.Action, bool) {
	if a, ok := g.actions[actionName]; ok {
		return a, true
	}

	a := g.group.FindAction(actionName)
	if a == nil {
		log.Error().
			Str("layer", g.group.Name()).
			Str("action", actionName).
			Msg("could not find input action")
		return nil, false
	}

	g.actions[actionName] = a
	return a, true
}
