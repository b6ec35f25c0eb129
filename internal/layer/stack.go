package layer

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/inputlayers/internal/action"
)

// Config configures the initialization of a Stack.
type Config struct {
	// Root is the name of the root layer's group. If empty, the first group of
	// the source is used.
	Root string
}

type entry struct {
	info  Info
	group *Group
}

// Stack is the stack of input layers.
//
// The top of the stack is the active layer and its group is the only enabled
// one. A Stack is not safe for concurrent use; all calls are expected to come
// from the same frame loop.
type Stack struct {
	source  action.Source
	entries []*entry

	// the currently enabled (or, if input is blocked, disabled) group, which
	// corresponds to the top entry
	current action.Group

	locked   bool
	shutdown bool

	observers []Observer
}

// Initialize returns a pointer to a new Stack for the given source with its
// root layer pushed and enabled.
//
// Failure to establish the root layer is a configuration error; there is no
// valid Stack without a root layer.
func Initialize(source action.Source, config Config) (*Stack, error) {
	groups := source.Groups()
	if len(groups) == 0 {
		return nil, ErrNoGroups
	}

	var root action.Group
	if config.Root == "" {
		root = groups[0]
	} else {
		root = source.FindGroup(config.Root)
		if root == nil {
			return nil, fmt.Errorf("%w: no group named '%s'", ErrUnknownRoot, config.Root)
		}
	}

	s := &Stack{source: source}
	info := Info{ID: root.ID(), Name: root.Name(), IsRoot: true}
	if err := s.push(info); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRoot, err.Error())
	}

	log.Debug().Str("layer", info.Name).Msg("initialized layer stack")
	return s, nil
}

// Shutdown disables the active group and clears the stack and all observers.
// Any later transition is rejected.
func (s *Stack) Shutdown() {
	if s.shutdown {
		return
	}
	if s.current != nil {
		s.current.Disable()
	}
	s.current = nil
	s.entries = nil
	s.observers = nil
	s.shutdown = true
	log.Debug().Msg("shut down layer stack")
}

// Push pushes the layer of the given name and makes it the active one.
//
// It is rejected (returning false, leaving the stack unchanged) if the stack
// is locked, the name is unknown, or the layer is already on the stack.
func (s *Stack) Push(name string) bool {
	if !s.mayTransition(OpPush, name) {
		return false
	}

	group := s.source.FindGroup(name)
	if group == nil {
		log.Error().Str("layer", name).Msg("cannot push unknown layer")
		s.reject(OpPush, name, ErrUnknownLayer)
		return false
	}

	if s.containsID(group.ID()) {
		log.Warn().Str("layer", name).Msg("cannot push a layer that is already on the stack")
		s.reject(OpPush, name, ErrDuplicate)
		return false
	}

	info := Info{ID: group.ID(), Name: group.Name()}
	if err := s.push(info); err != nil {
		log.Error().Err(err).Str("layer", name).Msg("push failed")
		s.reject(OpPush, name, err)
		return false
	}

	log.Debug().Str("layer", name).Int("depth", len(s.entries)).Msg("pushed layer")
	top := s.Peek()
	s.notify(func(o Observer) { o.LayerPushed(top) })
	return true
}

// Pop removes the top layer and re-activates the one below it.
//
// Popping the root layer is rejected, as is popping while locked.
func (s *Stack) Pop() bool {
	top := s.Peek()
	if !s.mayTransition(OpPop, top.Name) {
		return false
	}

	if top.IsRoot {
		log.Warn().Str("layer", top.Name).Msg("cannot pop the root layer")
		s.reject(OpPop, top.Name, ErrRootProtected)
		return false
	}

	if err := s.pop(); err != nil {
		log.Error().Err(err).Str("layer", top.Name).Msg("pop failed")
		s.reject(OpPop, top.Name, err)
		return false
	}

	log.Debug().Str("layer", top.Name).Int("depth", len(s.entries)).Msg("popped layer")
	newTop := s.Peek()
	s.notify(func(o Observer) { o.LayerPopped(newTop) })
	return true
}

// PopAllExceptRoot pops until only the root layer remains.
// While locked, this does nothing.
func (s *Stack) PopAllExceptRoot() {
	if !s.mayTransition(OpPop, s.Peek().Name) {
		return
	}
	for !s.Peek().IsRoot && s.Pop() {
	}
}

// PopAndPush pops the top layer (if possible) and then pushes the layer of the
// given name. It returns whether the push succeeded.
func (s *Stack) PopAndPush(name string) bool {
	s.Pop()
	return s.Push(name)
}

// Peek returns the active layer.
// Before initialization or after shutdown, this is the zero Info.
func (s *Stack) Peek() Info {
	if len(s.entries) == 0 {
		return Info{}
	}
	return s.entries[len(s.entries)-1].info
}

// Depth returns the number of layers on the stack, root included.
func (s *Stack) Depth() int {
	return len(s.entries)
}

// Layers returns the layers on the stack from bottom to top.
func (s *Stack) Layers() []Info {
	result := make([]Info, 0, len(s.entries))
	for _, e := range s.entries {
		result = append(result, e.info)
	}
	return result
}

// Contains returns whether a layer of the given name is on the stack.
func (s *Stack) Contains(name string) bool {
	for _, e := range s.entries {
		if e.info.Name == name {
			return true
		}
	}
	return false
}

// Locked returns whether transitions are currently blocked.
func (s *Stack) Locked() bool { return s.locked }

// SetLocked blocks (or unblocks) all push and pop operations.
func (s *Stack) SetLocked(locked bool) {
	s.locked = locked
	log.Debug().Bool("locked", locked).Msg("set layer stack lock")
}

// EnableControls enables or disables the active group without changing the
// stack. The next successful transition enables the new active group.
func (s *Stack) EnableControls(enable bool) {
	if s.current == nil {
		return
	}
	if enable {
		s.current.Enable()
	} else {
		s.current.Disable()
	}
}

// InputBlocked returns whether the active group is disabled.
func (s *Stack) InputBlocked() bool {
	if s.current == nil {
		return false
	}
	return !s.current.Enabled()
}

// AddObserver registers an observer for push and pop notifications.
// Observers are notified in registration order. Observers that are not
// Comparable are rejected; register such observers by pointer.
func (s *Stack) AddObserver(o Observer) {
	if !Comparable(o) {
		log.Error().Str("observer", fmt.Sprintf("%T", o)).Msg("cannot add observer of uncomparable type")
		return
	}
	if s.shutdown || s.observing(o) {
		return
	}
	s.observers = append(s.observers, o)
}

// RemoveObserver removes a previously registered observer.
func (s *Stack) RemoveObserver(o Observer) {
	if !Comparable(o) {
		return
	}
	for i, registered := range s.observers {
		if registered == o {
			s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
			return
		}
	}
}

func (s *Stack) observing(o Observer) bool {
	for _, registered := range s.observers {
		if registered == o {
			return true
		}
	}
	return false
}

// notify calls f for every observer, skipping those removed during delivery.
func (s *Stack) notify(f func(o Observer)) {
	snapshot := make([]Observer, len(s.observers))
	copy(snapshot, s.observers)
	for _, o := range snapshot {
		if s.observing(o) {
			f(o)
		}
	}
}

func (s *Stack) reject(op Op, name string, reason error) {
	s.notify(func(o Observer) {
		if r, ok := o.(RejectionObserver); ok {
			r.LayerRejected(op, name, reason)
		}
	})
}

// mayTransition checks the policy flags, logging and reporting a rejection.
func (s *Stack) mayTransition(op Op, name string) bool {
	var reason error
	switch {
	case s.shutdown:
		reason = ErrShutdown
	case s.locked:
		reason = ErrLocked
	default:
		return true
	}
	log.Warn().Str("op", string(op)).Str("layer", name).Msg(reason.Error())
	s.reject(op, name, reason)
	return false
}

func (s *Stack) containsID(id uuid.UUID) bool {
	for _, e := range s.entries {
		if e.info.ID == id {
			return true
		}
	}
	return false
}

// push switches to the given layer's group and appends it.
// On failure, the previous state is restored.
func (s *Stack) push(info Info) error {
	previous, previousEnabled := s.current, s.current != nil && s.current.Enabled()

	if err := s.switchGroup(info.ID); err != nil {
		s.restore(previous, previousEnabled)
		return err
	}

	s.entries = append(s.entries, &entry{info: info, group: NewGroup(s.current)})

	if err := s.verify(); err != nil {
		s.entries = s.entries[:len(s.entries)-1]
		s.restore(previous, previousEnabled)
		return err
	}
	return nil
}

// pop removes the top entry and switches to the group of the one below.
// On failure, the previous state is restored.
func (s *Stack) pop() error {
	previous, previousEnabled := s.current, s.current != nil && s.current.Enabled()

	removed := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]

	err := s.switchGroup(s.Peek().ID)
	if err == nil {
		err = s.verify()
	}
	if err != nil {
		s.entries = append(s.entries, removed)
		s.restore(previous, previousEnabled)
		return err
	}
	return nil
}

// switchGroup disables the current group and enables the group of the given
// identifier.
func (s *Stack) switchGroup(id uuid.UUID) error {
	if s.current != nil {
		s.current.Disable()
	}

	target := s.source.FindGroupByID(id)
	if target == nil {
		return fmt.Errorf("%w: no group with id %s", ErrUnknownLayer, id)
	}

	target.Enable()
	s.current = target
	return nil
}

// verify checks that the enabled group is the top entry's group.
func (s *Stack) verify() error {
	top := s.Peek()
	if s.current == nil || top.ID != s.current.ID() {
		enabled := "<none>"
		if s.current != nil {
			enabled = s.current.Name()
		}
		return fmt.Errorf("%w: top is '%s' but '%s' is enabled", ErrInconsistent, top.Name, enabled)
	}
	return nil
}

func (s *Stack) restore(previous action.Group, enabled bool) {
	if s.current != nil && s.current != previous {
		s.current.Disable()
	}
	s.current = previous
	if previous != nil && enabled {
		previous.Enable()
	}
}
