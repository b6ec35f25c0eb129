// Package command provides the demo's system commands, which are bound to
// keys independently of the layer stack.
package command

// Command is something that can be done and explained.
type Command interface {
	Do()
	Explain() string
}

// Simple implements the Command interface.
// It models a command as a func() which is called on Do.
type Simple struct {
	action  func()
	explain func() string
}

// Do performs this simple command.
func (a *Simple) Do() {
	a.action()
}

// Explain returns the explanation for this simple command's Do member.
func (a *Simple) Explain() string {
	return a.explain()
}

// NewSimple returns a pointer to a new simple command, which stores the given
// action function and the given explainer to use when prompted with Do or
// Explain respectively.
func NewSimple(explainer func() string, action func()) *Simple {
	return &Simple{
		action:  action,
		explain: explainer,
	}
}
