package control_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/inputlayers/internal/control"
	"github.com/ja-he/inputlayers/internal/input"
	"github.com/ja-he/inputlayers/internal/layer"
)

func newController(t *testing.T) (*control.Controller, *layer.Stack) {
	t.Helper()
	previous := log.Logger
	log.Logger = zerolog.Nop()
	t.Cleanup(func() { log.Logger = previous })

	src, err := input.NewSource(0,
		input.GroupDef{Name: "player"},
		input.GroupDef{Name: "menu"},
		input.GroupDef{Name: "dialog"},
	)
	if err != nil {
		t.Fatal(err.Error())
	}
	s, err := layer.Initialize(src, layer.Config{})
	if err != nil {
		t.Fatal(err.Error())
	}
	return control.NewController(s), s
}

func TestControllerDelegates(t *testing.T) {
	c, s := newController(t)

	c.Push("menu")
	if s.Peek().Name != "menu" || c.Peek().Name != "menu" {
		t.Error("push not delegated")
	}
	if c.TryPush("menu") {
		t.Error("duplicate push accepted")
	}
	if !c.PopAndPush("dialog") || len(c.Layers()) != 2 || c.Peek().Name != "dialog" {
		t.Error("pop and push not delegated")
	}

	c.SetLocked(true)
	if !c.Locked() || c.Pop() {
		t.Error("lock not delegated")
	}
	c.SetLocked(false)

	c.EnableControls(false)
	if !c.InputBlocked() {
		t.Error("input block not delegated")
	}
	c.EnableControls(true)

	c.Push("menu")
	c.PopAllExceptRoot()
	if s.Depth() != 1 {
		t.Error("pop all not delegated")
	}
	if c.Pop() {
		t.Error("root pop accepted")
	}
}

func TestControllerRebroadcasts(t *testing.T) {
	c, s := newController(t)

	pushed, popped := []string{}, []string{}
	o := &layer.ObserverFuncs{
		Pushed: func(top layer.Info) { pushed = append(pushed, top.Name) },
		Popped: func(top layer.Info) { popped = append(popped, top.Name) },
	}
	c.Subscribe(o)
	c.Subscribe(o)

	// transitions made directly on the stack are re-broadcast as well
	s.Push("menu")
	c.Push("dialog")
	c.Pop()

	if len(pushed) != 2 || pushed[0] != "menu" || pushed[1] != "dialog" {
		t.Error("unexpected push broadcasts", pushed)
	}
	if len(popped) != 1 || popped[0] != "menu" {
		t.Error("unexpected pop broadcasts", popped)
	}

	c.Unsubscribe(o)
	c.Pop()
	if len(popped) != 1 {
		t.Error("unsubscribed observer notified")
	}

	c.Subscribe(o)
	c.Close()
	s.Push("menu")
	if len(pushed) != 2 {
		t.Error("observer notified after close")
	}
}

// taggedObserver has a slice field, so its values cannot be compared.
type taggedObserver struct {
	tags   []string
	pushed *int
}

func (o taggedObserver) LayerPushed(layer.Info) { *o.pushed++ }
func (o taggedObserver) LayerPopped(layer.Info) {}

func TestControllerRejectsUncomparable(t *testing.T) {
	c, _ := newController(t)

	pushed := 0
	o := taggedObserver{pushed: &pushed}
	c.Subscribe(o)
	c.Subscribe(nil)

	c.Push("menu")
	c.Unsubscribe(o)
	if pushed != 0 || c.Peek().Name != "menu" {
		t.Error("uncomparable observer subscribed", pushed)
	}
}
