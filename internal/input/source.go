package input

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ja-he/inputlayers/internal/action"
)

// GroupDef defines a group of actions for NewSource.
type GroupDef struct {
	Name    string
	Actions []ActionDef
}

// ActionDef defines an action for NewSource.
type ActionDef struct {
	Name string
	Kind action.Kind
}

// Source is a frame-driven action source; implements action.Source.
//
// Its actions are actuated from the outside (see Keyboard) and the host is
// expected to call BeginFrame once at the beginning of every frame.
type Source struct {
	holdFrames int

	groups []*Group
	byName map[string]*Group
	byID   map[uuid.UUID]*Group
}

// NewSource returns a pointer to a new Source with the defined groups, all
// of them initially disabled.
// An action actuated in some frame stays pressed for holdFrames further idle
// frames before it is released.
func NewSource(holdFrames int, defs ...GroupDef) (*Source, error) {
	s := &Source{
		holdFrames: holdFrames,
		byName:     make(map[string]*Group),
		byID:       make(map[uuid.UUID]*Group),
	}
	for _, def := range defs {
		if _, exists := s.byName[def.Name]; exists {
			return nil, fmt.Errorf("duplicate group '%s'", def.Name)
		}
		g := newGroup(def.Name)
		for _, actionDef := range def.Actions {
			if _, exists := g.byName[actionDef.Name]; exists {
				return nil, fmt.Errorf("duplicate action '%s' in group '%s'", actionDef.Name, def.Name)
			}
			a := NewAction(actionDef.Name, actionDef.Kind)
			g.actions = append(g.actions, a)
			g.byName[a.name] = a
		}
		s.groups = append(s.groups, g)
		s.byName[g.name] = g
		s.byID[g.id] = g
	}
	return s, nil
}

// Groups returns all groups in definition order.
func (s *Source) Groups() []action.Group {
	result := make([]action.Group, 0, len(s.groups))
	for _, g := range s.groups {
		result = append(result, g)
	}
	return result
}

// FindGroup returns the group of the given name or nil.
func (s *Source) FindGroup(name string) action.Group {
	g, ok := s.byName[name]
	if !ok {
		return nil
	}
	return g
}

// FindGroupByID returns the group of the given identifier or nil.
func (s *Source) FindGroupByID(id uuid.UUID) action.Group {
	g, ok := s.byID[id]
	if !ok {
		return nil
	}
	return g
}

// Group returns the concrete group of the given name or nil.
func (s *Source) Group(name string) *Group {
	return s.byName[name]
}

// BeginFrame advances all actions to a new frame, clearing their per-frame
// flags and releasing those that have been idle for too long.
func (s *Source) BeginFrame() {
	for _, g := range s.groups {
		for _, a := range g.actions {
			a.beginFrame(s.holdFrames)
		}
	}
}
