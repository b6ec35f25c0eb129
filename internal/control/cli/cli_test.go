package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/inputlayers/internal/action"
	"github.com/ja-he/inputlayers/internal/binding"
	"github.com/ja-he/inputlayers/internal/config"
	"github.com/ja-he/inputlayers/internal/input"
)

func quiet(t *testing.T) {
	t.Helper()
	previous := log.Logger
	log.Logger = zerolog.Nop()
	t.Cleanup(func() { log.Logger = previous })
}

func runeKey(r rune) input.Key {
	return input.Key{Key: tcell.KeyRune, Ch: r}
}

func layerNames(a *demoApp) string {
	names := []string{}
	for _, l := range a.Layers() {
		names = append(names, l.Name)
	}
	return strings.Join(names, ",")
}

func TestCheck(t *testing.T) {
	quiet(t)
	var out bytes.Buffer
	if err := check(config.Default(config.Dark), &out); err != nil {
		t.Fatal(err.Error())
	}
	s := out.String()
	for _, expected := range []string{
		"root: player (" + action.GroupID("player").String() + ")\n",
		"layer menu\n",
		"  back (button): <esc> q\n",
		"  navigate (axis): j k\n",
	} {
		if !strings.Contains(s, expected) {
			t.Errorf("output lacks '%s':\n%s", expected, s)
		}
	}

	cfg := config.Default(config.Dark)
	cfg.Root = "nope"
	if err := check(cfg, &out); err == nil {
		t.Error("expected error for unknown root")
	}
}

func TestDemoApp(t *testing.T) {
	quiet(t)
	app, err := newDemoApp(config.Default(config.Dark))
	if err != nil {
		t.Fatal(err.Error())
	}
	defer app.shutdown()

	start := time.Now()
	frame := func(i int) { app.frame(start.Add(time.Duration(i) * 100 * time.Millisecond)) }
	frame(0)

	t.Run("system keys", func(t *testing.T) {
		app.handleKey(runeKey('2'))
		app.handleKey(runeKey('3'))
		if layerNames(app) != "player,menu,dialog" {
			t.Error("unexpected layers", layerNames(app))
		}
		app.handleKey(runeKey('L'))
		app.handleKey(runeKey('0'))
		if !app.Locked() || layerNames(app) != "player,menu,dialog" {
			t.Error("pop while locked")
		}
		app.handleKey(runeKey('L'))
		app.handleKey(runeKey('9'))
		if layerNames(app) != "player" {
			t.Error("unexpected layers after pop all", layerNames(app))
		}
		app.handleKey(runeKey('B'))
		if !app.InputBlocked() {
			t.Error("input not blocked")
		}
		app.handleKey(runeKey('B'))
	})

	t.Run("layer actions", func(t *testing.T) {
		app.handleKey(runeKey('m'))
		if layerNames(app) != "player,menu" {
			t.Fatal("open-menu did not push menu", layerNames(app))
		}
		app.handleKey(input.Key{Key: tcell.KeyEnter})
		if layerNames(app) != "player,menu,dialog" || app.acceptWait == nil {
			t.Fatal("confirm did not push dialog with pending wait", layerNames(app))
		}

		// the dialog's escape does not reach the menu
		app.handleKey(input.Key{Key: tcell.KeyEscape})
		if layerNames(app) != "player,menu" || app.acceptWait != nil {
			t.Error("decline did not pop exactly the dialog", layerNames(app))
		}

		app.handleKey(input.Key{Key: tcell.KeyEnter})
		app.handleKey(runeKey('y'))
		frame(1)
		if layerNames(app) != "player" || app.acceptWait != nil {
			t.Error("accepting did not return to root", layerNames(app))
		}
	})

	t.Run("marker", func(t *testing.T) {
		for i := 2; i < 8; i++ {
			frame(i)
		}
		x, y := app.Marker()
		app.handleKey(runeKey('l'))
		frame(8)
		nx, ny := app.Marker()
		if nx <= x || ny != y {
			t.Errorf("marker did not move right: (%f,%f) -> (%f,%f)", x, y, nx, ny)
		}

		// menu on top, player input is inert
		app.handleKey(runeKey('2'))
		for i := 9; i < 14; i++ {
			frame(i)
		}
		x, y = app.Marker()
		app.handleKey(runeKey('l'))
		frame(14)
		if nx, ny := app.Marker(); nx != x || ny != y {
			t.Error("marker moved with player layer in background")
		}
		app.handleKey(runeKey('0'))
	})

	t.Run("quit", func(t *testing.T) {
		app.handleKey(input.Key{Key: tcell.KeyCtrlC})
		if !app.quit {
			t.Error("not quitting")
		}
	})

	if app.FPS() <= 0 {
		t.Error("no frame rate")
	}
}

func TestDemoAppShutdown(t *testing.T) {
	quiet(t)
	app, err := newDemoApp(config.Default(config.Dark))
	if err != nil {
		t.Fatal(err.Error())
	}
	app.shutdown()
	if app.controller.TryPush("menu") {
		t.Error("push after shutdown")
	}
	if w := app.bindings["player"].WaitButton("jump"); w.Poll() != binding.Cancelled {
		t.Error("wait after shutdown not cancelled")
	}
}

// endlessKeys always has another key event.
type endlessKeys struct{}

func (endlessKeys) PollEvent() tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
}

func TestPollEventsStops(t *testing.T) {

	t.Run("done while blocked on full buffer", func(t *testing.T) {
		events := make(chan tcell.Event, 1)
		done := make(chan struct{})
		returned := make(chan struct{})
		go func() {
			pollEvents(endlessKeys{}, events, done)
			close(returned)
		}()

		<-events
		close(done)
		select {
		case <-returned:
		case <-time.After(time.Second):
			t.Fatal("event poller did not stop")
		}
		for range events {
		}
	})

	t.Run("finalized screen", func(t *testing.T) {
		screen := tcell.NewSimulationScreen("UTF-8")
		if err := screen.Init(); err != nil {
			t.Fatal(err.Error())
		}
		events := make(chan tcell.Event, 32)
		done := make(chan struct{})
		defer close(done)
		go pollEvents(screen, events, done)

		screen.Fini()
		timeout := time.After(time.Second)
		for {
			select {
			case _, ok := <-events:
				if !ok {
					return
				}
			case <-timeout:
				t.Fatal("events not closed after screen was finalized")
			}
		}
	})
}
