package command_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/inputlayers/internal/control/command"
	"github.com/ja-he/inputlayers/internal/input"
)

func TestSimple(t *testing.T) {

	t.Run("Do", func(t *testing.T) {
		becomesTrue := false
		s := command.NewSimple(func() string { return "sets flag to true" }, func() { becomesTrue = true })
		s.Do()
		if !becomesTrue {
			t.Error("command was not executed properly (flag unchanged)")
		}
	})

	t.Run("Explain", func(t *testing.T) {
		e := "does nothing"
		s := command.NewSimple(func() string { return e }, func() {})
		if s.Explain() != "does nothing" {
			t.Error("initial explanation wrong:", s.Explain())
		}
		e = "does nothing, very well"
		if s.Explain() != "does nothing, very well" {
			t.Error("changed explanation wrong:", s.Explain())
		}
	})

}

func TestKeymap(t *testing.T) {
	m := command.NewKeymap()
	pops, pushes := 0, 0
	if err := m.Bind("0", command.NewSimple(func() string { return "pop" }, func() { pops++ })); err != nil {
		t.Fatal(err.Error())
	}
	if err := m.Bind("1", command.NewSimple(func() string { return "push" }, func() { pushes++ })); err != nil {
		t.Fatal(err.Error())
	}
	if err := m.Bind("<c-c>", command.NewSimple(func() string { return "quit" }, func() {})); err != nil {
		t.Fatal(err.Error())
	}
	if err := m.Bind("ab", command.NewSimple(func() string { return "" }, func() {})); err == nil {
		t.Error("expected error for multi-key spec")
	}

	if !m.Handle(input.Key{Key: tcell.KeyRune, Ch: '0'}) || pops != 1 || pushes != 0 {
		t.Error("bound key not handled")
	}
	if m.Handle(input.Key{Key: tcell.KeyRune, Ch: '2'}) {
		t.Error("unbound key handled")
	}

	help := m.Help()
	if len(help) != 3 || help[0] != "0: pop" || help[1] != "1: push" || help[2] != "<c-c>: quit" {
		t.Error("unexpected help", help)
	}
	if m.HelpLine() != "0: pop  1: push  <c-c>: quit" {
		t.Error("unexpected help line", m.HelpLine())
	}
}
