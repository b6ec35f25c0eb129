package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/inputlayers/internal/action"
	"github.com/ja-he/inputlayers/internal/binding"
	"github.com/ja-he/inputlayers/internal/config"
	"github.com/ja-he/inputlayers/internal/control"
	"github.com/ja-he/inputlayers/internal/control/command"
	"github.com/ja-he/inputlayers/internal/input"
	"github.com/ja-he/inputlayers/internal/layer"
	"github.com/ja-he/inputlayers/internal/metrics"
)

// marker speed in field widths per second
const markerSpeed = 0.5

// demoApp is the frame-driven state of the demo, independent of the screen.
type demoApp struct {
	keyboard   *input.Keyboard
	stack      *layer.Stack
	controller *control.Controller
	recorder   *metrics.Recorder
	keymap     *command.Keymap

	bindings map[string]*binding.Binding

	// pending wait for the dialog to be accepted
	acceptWait *binding.Wait

	markerX, markerY float64

	lastFrame time.Time
	fps       float64

	quit bool
}

func newDemoApp(cfg config.Config) (*demoApp, error) {
	keyboard, err := input.NewKeyboard(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not set up keyboard: %w", err)
	}

	stack, err := layer.Initialize(keyboard, layer.Config{Root: cfg.RootLayer()})
	if err != nil {
		return nil, fmt.Errorf("could not initialize layer stack: %w", err)
	}

	a := &demoApp{
		keyboard:   keyboard,
		stack:      stack,
		controller: control.NewController(stack),
		recorder:   metrics.NewRecorder(stack),
		keymap:     command.NewKeymap(),
		bindings:   make(map[string]*binding.Binding),
		markerX:    0.5,
		markerY:    0.5,
	}

	for _, l := range cfg.Layers {
		b, err := binding.New(stack, keyboard, l.Name)
		if err != nil {
			return nil, err
		}
		a.bindings[l.Name] = b
		for _, act := range l.Actions {
			layerName, actionName := l.Name, act.Name
			b.Register(actionName, action.Performed|action.Canceled, func(ctx action.Context) {
				log.Debug().Str("layer", layerName).Str("action", actionName).Str("phase", ctx.Phase.String()).Str("value", ctx.Value.String()).Msg("action")
			})
		}
	}
	a.registerDemoCallbacks()
	a.controller.Subscribe(&layer.ObserverFuncs{
		Pushed: a.layerPushed,
		Popped: a.layerPopped,
	})

	if err := a.bindSystemKeys(cfg); err != nil {
		return nil, err
	}
	return a, nil
}

// on registers the callback for the given action if the configuration has it.
func (a *demoApp) on(layerName, actionName string, callback func()) {
	b, ok := a.bindings[layerName]
	if !ok || a.keyboard.Group(layerName).Action(actionName) == nil {
		return
	}
	b.Register(actionName, action.Started, func(action.Context) { callback() })
}

func (a *demoApp) registerDemoCallbacks() {
	a.on("player", "jump", func() { log.Info().Msg("jump!") })
	a.on("player", "open-menu", func() { a.controller.Push("menu") })
	a.on("menu", "back", func() { a.controller.Pop() })
	a.on("menu", "confirm", func() { a.controller.Push("dialog") })
	a.on("dialog", "decline", func() { a.controller.Pop() })
}

func (a *demoApp) layerPushed(top layer.Info) {
	if top.Name != "dialog" {
		return
	}
	if a.acceptWait != nil {
		a.acceptWait.Cancel()
	}
	a.acceptWait = a.bindings["dialog"].WaitButtonDown("accept")
}

func (a *demoApp) layerPopped(layer.Info) {
	if a.acceptWait != nil && !a.stack.Contains("dialog") {
		a.acceptWait.Cancel()
		a.acceptWait = nil
	}
}

func (a *demoApp) bindSystemKeys(cfg config.Config) error {
	simple := func(explanation string, do func()) command.Command {
		return command.NewSimple(func() string { return explanation }, do)
	}

	bindings := map[input.Keyspec]command.Command{
		"0": simple("pop", func() { a.controller.Pop() }),
		"9": simple("pop all", a.controller.PopAllExceptRoot),
		"L": simple("lock", func() { a.controller.SetLocked(!a.controller.Locked()) }),
		"B": simple("block", func() { a.controller.EnableControls(a.controller.InputBlocked()) }),
		"<c-c>": simple("quit", func() {
			log.Info().Msg("quitting")
			a.quit = true
		}),
	}
	for i, l := range cfg.Layers {
		if i >= 8 {
			log.Warn().Str("layer", l.Name).Msg("no system key left to push layer")
			continue
		}
		name := l.Name
		bindings[input.Keyspec(fmt.Sprint(i+1))] = simple("push "+name, func() { a.controller.Push(name) })
	}

	for spec, c := range bindings {
		if err := a.keymap.Bind(spec, c); err != nil {
			return err
		}
	}
	return nil
}

// handleKey lets system commands take precedence over layered input.
func (a *demoApp) handleKey(key input.Key) {
	if a.keymap.Handle(key) {
		return
	}
	a.keyboard.HandleKey(key)
}

// frame performs the per-frame update: it reads continuous input, polls the
// pending wait and finally starts the next input frame.
func (a *demoApp) frame(now time.Time) {
	start := time.Now()

	var dt float64
	if !a.lastFrame.IsZero() {
		dt = now.Sub(a.lastFrame).Seconds()
	}
	a.lastFrame = now
	if dt > 0 {
		a.fps = 0.9*a.fps + 0.1*(1/dt)
	}

	if player, ok := a.bindings["player"]; ok {
		if v, ok := binding.Read[[2]float64](player, "move"); ok {
			a.markerX = clamp01(a.markerX + v[0]*markerSpeed*dt)
			a.markerY = clamp01(a.markerY + v[1]*markerSpeed*dt)
		}
	}

	if a.acceptWait != nil {
		switch a.acceptWait.Poll() {
		case binding.Resolved:
			log.Info().Msg("dialog accepted")
			a.acceptWait = nil
			a.controller.PopAllExceptRoot()
		case binding.Cancelled:
			a.acceptWait = nil
		}
	}

	a.keyboard.BeginFrame()
	a.recorder.ObserveFrame(time.Since(start))
}

func (a *demoApp) shutdown() {
	for _, b := range a.bindings {
		b.Teardown()
	}
	a.controller.Close()
	a.recorder.Close()
	a.stack.Shutdown()
}

// Layers returns the layers on the stack.
func (a *demoApp) Layers() []layer.Info { return a.controller.Layers() }

// Locked returns whether the stack is locked.
func (a *demoApp) Locked() bool { return a.controller.Locked() }

// InputBlocked returns whether input is blocked.
func (a *demoApp) InputBlocked() bool { return a.controller.InputBlocked() }

// FPS returns the smoothed frame rate.
func (a *demoApp) FPS() float64 { return a.fps }

// Marker returns the marker position.
func (a *demoApp) Marker() (float64, float64) { return a.markerX, a.markerY }

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
