package tui

import (
	"github.com/ja-he/inputlayers/internal/layer"
	"github.com/ja-he/inputlayers/internal/potatolog"
	"github.com/ja-he/inputlayers/internal/styling"
)

// Model is the state the demo view displays.
type Model interface {
	Layers() []layer.Info
	Locked() bool
	InputBlocked() bool
	FPS() float64
	Marker() (float64, float64)
}

const (
	stackPaneWidth = 24
	statusHeight   = 2
	logHeight      = 8
)

// View lays out and draws all panes of the demo.
type View struct {
	screen *ScreenHandler
	panes  []Pane
}

// NewView returns a pointer to a new View drawing the given model to the given
// screen.
func NewView(screen *ScreenHandler, stylesheet *styling.Stylesheet, model Model, logReader potatolog.LogReader, help string) *View {
	screenDims := screen.Dimensions
	statusDims := func() (x, y, w, h int) {
		_, _, w, _ = screenDims()
		return 0, 0, w, statusHeight
	}
	logDims := func() (x, y, w, h int) {
		_, _, w, h = screenDims()
		lh := min(logHeight, max(0, h-statusHeight))
		return 0, h - lh, w, lh
	}
	stackDims := func() (x, y, w, h int) {
		_, _, sw, _ := screenDims()
		_, ly, _, _ := logDims()
		return 0, statusHeight, min(stackPaneWidth, sw), max(0, ly-statusHeight)
	}
	fieldDims := func() (x, y, w, h int) {
		_, _, sw, _ := screenDims()
		_, ly, _, _ := logDims()
		return stackPaneWidth, statusHeight, max(0, sw-stackPaneWidth), max(0, ly-statusHeight)
	}

	return &View{
		screen: screen,
		panes: []Pane{
			&StatusPane{
				Renderer:   screen,
				Dims:       statusDims,
				Stylesheet: stylesheet,
				Locked:     model.Locked,
				Blocked:    model.InputBlocked,
				FPS:        model.FPS,
				Help:       help,
			},
			&StackPane{
				Renderer:   screen,
				Dims:       stackDims,
				Stylesheet: stylesheet,
				Layers:     model.Layers,
				Blocked:    model.InputBlocked,
			},
			&FieldPane{
				Renderer:   screen,
				Dims:       fieldDims,
				Stylesheet: stylesheet,
				Position:   model.Marker,
			},
			&LogPane{
				Renderer:   screen,
				Dims:       logDims,
				Stylesheet: stylesheet,
				LogReader:  logReader,
			},
		},
	}
}

// Render clears the screen, draws all panes and shows the result.
func (v *View) Render() {
	v.screen.Clear()
	for _, p := range v.panes {
		p.Draw()
	}
	v.screen.Show()
}
