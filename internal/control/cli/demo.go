package cli

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/inputlayers/internal/config"
	"github.com/ja-he/inputlayers/internal/input"
	"github.com/ja-he/inputlayers/internal/potatolog"
	"github.com/ja-he/inputlayers/internal/styling"
	"github.com/ja-he/inputlayers/internal/tui"
)

// DemoCommand holds the flags of the `demo` command.
type DemoCommand struct {
	Config        string `short:"c" long:"config" description:"Specify the config file (default: $INPUTLAYERS_HOME/config.yaml)" value-name:"<file>"`
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in the config)"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs are only shown in the demo)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
	MetricsAddr   string `short:"m" long:"metrics-addr" description:"serve prometheus metrics on this address, e.g. ':2112'" value-name:"<addr>"`
	FPS           int    `short:"f" long:"fps" default:"30" description:"frames per second"`
}

// Execute runs the demo until it is quit.
func (command *DemoCommand) Execute(args []string) error {
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open file '%s' for logging: %w", command.LogOutputFile, err)
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = potatolog.GlobalMemoryLogReaderWriter
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Logger()

	// until the screen is set up, errors should also show on stderr
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	if command.FPS <= 0 {
		return fmt.Errorf("invalid frame rate %d", command.FPS)
	}

	cfg, err := config.Load(configPath(command.Config), themeFromString(command.Theme))
	if err != nil {
		return err
	}
	stylesheet, err := styling.NewStylesheetFromConfig(cfg.Stylesheet)
	if err != nil {
		return err
	}

	app, err := newDemoApp(cfg)
	if err != nil {
		return err
	}
	defer app.shutdown()

	if command.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		if err := app.recorder.Register(reg); err != nil {
			return err
		}
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			err := http.ListenAndServe(command.MetricsAddr, mux)
			log.Error().Err(err).Str("addr", command.MetricsAddr).Msg("metrics server stopped")
		}()
	}

	screen, err := tui.NewScreenHandler(nil)
	if err != nil {
		return err
	}
	view := tui.NewView(screen, stylesheet, app, potatolog.GlobalMemoryLogReaderWriter, app.keymap.HelpLine())

	// now that the screen is initialized, logs go to the log pane
	log.Logger = tuiLogger

	run(app, screen, view, time.Second/time.Duration(command.FPS))
	return nil
}

// run is the frame loop.
// Screen events are polled on a separate goroutine, but all handling happens
// here, so the layer stack is only ever used from this goroutine.
func run(app *demoApp, screen *tui.ScreenHandler, view *tui.View, frameDuration time.Duration) {
	log.Info().Dur("frame", frameDuration).Msg("demo started")
	defer screen.Fini()

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen.GetEventPollable(), events, done)

	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	view.Render()
	for !app.quit {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch e := ev.(type) {
			case *tcell.EventKey:
				app.handleKey(input.KeyFromTcellEvent(e))
			case *tcell.EventResize:
				screen.NeedsSync()
			}
		case now := <-ticker.C:
			app.frame(now)
			view.Render()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done is
// closed. events is closed on return.
func pollEvents(pollable tui.EventPollable, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := pollable.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
