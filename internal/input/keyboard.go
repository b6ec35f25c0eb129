package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/inputlayers/internal/action"
	"github.com/ja-he/inputlayers/internal/config"
)

type keyBinding struct {
	action *Action
	value  action.Value
}

// Keyboard is a Source whose actions are actuated by terminal key presses.
type Keyboard struct {
	*Source

	bindings map[Key][]keyBinding
	keyspecs map[*Action][]Keyspec
}

// NewKeyboard constructs a Keyboard from the layer definitions of the given
// configuration. Every key binding must describe exactly one key.
func NewKeyboard(cfg config.Config) (*Keyboard, error) {
	defs := make([]GroupDef, 0, len(cfg.Layers))
	for _, l := range cfg.Layers {
		def := GroupDef{Name: l.Name}
		for _, a := range l.Actions {
			kind, err := action.KindFromString(a.Kind)
			if err != nil {
				return nil, fmt.Errorf("action '%s' in layer '%s': %w", a.Name, l.Name, err)
			}
			def.Actions = append(def.Actions, ActionDef{Name: a.Name, Kind: kind})
		}
		defs = append(defs, def)
	}

	source, err := NewSource(cfg.HoldFrames, defs...)
	if err != nil {
		return nil, err
	}

	k := &Keyboard{
		Source:   source,
		bindings: make(map[Key][]keyBinding),
		keyspecs: make(map[*Action][]Keyspec),
	}
	for _, l := range cfg.Layers {
		g := source.Group(l.Name)
		for _, a := range l.Actions {
			act := g.Action(a.Name)
			for _, binding := range a.Keys {
				key, err := ConfigKeyspecToKey(Keyspec(binding.Key))
				if err != nil {
					return nil, fmt.Errorf("action '%s' in layer '%s': %w", a.Name, l.Name, err)
				}
				k.bindings[key] = append(k.bindings[key], keyBinding{
					action: act,
					value:  valueFromConfig(act.Kind(), binding.Value),
				})
				k.keyspecs[act] = append(k.keyspecs[act], Keyspec(binding.Key))
			}
		}
	}
	return k, nil
}

// HandleKey actuates all enabled actions bound to the given key.
// Only actions enabled before the first actuation are considered, so a key
// never reaches a layer that one of its own callbacks activated.
// Returns whether any action was actuated.
func (k *Keyboard) HandleKey(key Key) (applied bool) {
	targets := []keyBinding{}
	for _, b := range k.bindings[key] {
		if b.action.Enabled() {
			targets = append(targets, b)
		}
	}
	for _, b := range targets {
		if b.action.Actuate(b.value) {
			applied = true
		}
	}
	if !applied {
		log.Trace().Str("key", key.ToDebugString()).Msg("key not bound in any enabled layer")
	}
	return applied
}

// HandleEvent is HandleKey for a tcell key event.
func (k *Keyboard) HandleEvent(e *tcell.EventKey) bool {
	return k.HandleKey(KeyFromTcellEvent(e))
}

// Keyspecs returns the keyspecs bound to the given action of the given group.
func (k *Keyboard) Keyspecs(groupName, actionName string) []Keyspec {
	g := k.Group(groupName)
	if g == nil {
		return nil
	}
	a := g.Action(actionName)
	if a == nil {
		return nil
	}
	return k.keyspecs[a]
}

func valueFromConfig(kind action.Kind, value []float64) action.Value {
	v := action.Value{Kind: kind}
	switch len(value) {
	case 0:
		v.X = 1
	case 1:
		v.X = value[0]
	default:
		v.X, v.Y = value[0], value[1]
	}
	return v
}
