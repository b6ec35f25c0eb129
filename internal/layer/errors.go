package layer

import "errors"

// Configuration errors, returned from Initialize.
var (
	ErrNoGroups    = errors.New("no action groups available")
	ErrUnknownRoot = errors.New("root layer cannot be resolved")
)

// Reasons for rejected transitions, reported to RejectionObservers.
var (
	ErrShutdown      = errors.New("layer stack is shut down")
	ErrLocked        = errors.New("layer stack is locked")
	ErrUnknownLayer  = errors.New("unknown layer")
	ErrDuplicate     = errors.New("layer is already on the stack")
	ErrRootProtected = errors.New("root layer cannot be popped")
	ErrInconsistent  = errors.New("enabled group does not match top of stack")
)

// Reason returns a short label for the given rejection reason, e.g. for use
// as a metrics label.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrShutdown):
		return "shutdown"
	case errors.Is(err, ErrLocked):
		return "locked"
	case errors.Is(err, ErrUnknownLayer):
		return "unknown-layer"
	case errors.Is(err, ErrDuplicate):
		return "duplicate"
	case errors.Is(err, ErrRootProtected):
		return "root-protected"
	case errors.Is(err, ErrInconsistent):
		return "inconsistent"
	default:
		return "other"
	}
}
