// Package layer implements the input layer stack.
//
// At any time exactly one layer, the top of the stack, is active, and only its
// action group is enabled. The bottom of the stack is the root layer, which is
// pushed once on initialization and can never be popped.
package layer

import (
	"fmt"

	"github.com/google/uuid"
)

// Info describes one input layer.
//
// Two Infos are equal iff their identifiers and root flags match.
type Info struct {
	ID     uuid.UUID
	Name   string
	IsRoot bool
}

// Equal returns whether i and other describe the same layer.
func (i Info) Equal(other Info) bool {
	return i.ID == other.ID && i.IsRoot == other.IsRoot
}

// IsZero returns whether this is the empty Info, i.E. no layer.
func (i Info) IsZero() bool {
	return i.ID == uuid.Nil
}

func (i Info) String() string {
	return fmt.Sprintf("Layer(name:%s, id:%s, root:%t)", i.Name, i.ID, i.IsRoot)
}
