package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/inputlayers/internal/input"
)

type binding struct {
	spec    input.Keyspec
	command Command
}

// Keymap maps single keys to commands.
type Keymap struct {
	bindings map[input.Key]binding
}

// NewKeymap returns a pointer to a new, empty Keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[input.Key]binding)}
}

// Bind binds the command to the key of the given keyspec, replacing any
// earlier binding of that key.
func (m *Keymap) Bind(spec input.Keyspec, c Command) error {
	key, err := input.ConfigKeyspecToKey(spec)
	if err != nil {
		return fmt.Errorf("cannot bind '%s': %w", spec, err)
	}
	m.bindings[key] = binding{spec: spec, command: c}
	return nil
}

// Handle performs the command bound to the given key, if there is one, and
// returns whether there was.
func (m *Keymap) Handle(key input.Key) bool {
	b, ok := m.bindings[key]
	if !ok {
		return false
	}
	log.Debug().Str("key", string(b.spec)).Str("command", b.command.Explain()).Msg("performing command")
	b.command.Do()
	return true
}

// Help returns a line per binding, sorted by keyspec, e.g. "0: pop".
func (m *Keymap) Help() []string {
	result := make([]string, 0, len(m.bindings))
	for _, b := range m.bindings {
		result = append(result, string(b.spec)+": "+b.command.Explain())
	}
	sort.Strings(result)
	return result
}

// HelpLine returns the help joined into a single line.
func (m *Keymap) HelpLine() string {
	return strings.Join(m.Help(), "  ")
}
