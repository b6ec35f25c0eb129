package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ja-he/inputlayers/internal/layer"
	"github.com/ja-he/inputlayers/internal/potatolog"
	"github.com/ja-he/inputlayers/internal/styling"
)

// Pane is a rectangular part of the screen that draws itself.
type Pane interface {
	Draw()
	Dimensions() (x, y, w, h int)
}

// StackPane draws the layers of the stack from bottom to top, highlighting
// the root and the active layer. The active layer is dimmed while its input is
// blocked.
type StackPane struct {
	Renderer   Renderer
	Dims       func() (x, y, w, h int)
	Stylesheet *styling.Stylesheet

	Layers  func() []layer.Info
	Blocked func() bool
}

// Dimensions returns the pane's dimensions.
func (p *StackPane) Dimensions() (x, y, w, h int) { return p.Dims() }

// Draw draws the stack with the top layer in the first row.
func (p *StackPane) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)
	p.Renderer.DrawText(x, y, w, 1, p.Stylesheet.Normal.Bolded(), "layers")

	layers := p.Layers()
	row := y + 1
	for i := len(layers) - 1; i >= 0 && row < y+h; i-- {
		info := layers[i]
		style := p.Stylesheet.ForLayer(info, i == len(layers)-1, p.Blocked())
		label := " " + info.Name
		if info.IsRoot {
			label += " (root)"
		}
		p.Renderer.DrawBox(x, row, w, 1, style)
		p.Renderer.DrawText(x, row, w, 1, style, label)
		row++
	}
}

// StatusPane draws a single line holding the policy flags and the frame rate.
type StatusPane struct {
	Renderer   Renderer
	Dims       func() (x, y, w, h int)
	Stylesheet *styling.Stylesheet

	Locked  func() bool
	Blocked func() bool
	FPS     func() float64
	Help    string
}

// Dimensions returns the pane's dimensions.
func (p *StatusPane) Dimensions() (x, y, w, h int) { return p.Dims() }

// Draw draws the status line.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Status)
	p.Renderer.DrawText(x, y, w, 1, p.Stylesheet.Status, StatusLine(p.Locked(), p.Blocked(), p.FPS()))
	if h > 1 {
		p.Renderer.DrawText(x, y+1, w, h-1, p.Stylesheet.Status.DefaultDimmed(), p.Help)
	}
}

// StatusLine formats the policy flags and frame rate.
func StatusLine(locked, blocked bool, fps float64) string {
	flag := func(name string, set bool) string {
		if set {
			return "[" + strings.ToUpper(name) + "]"
		}
		return "[" + name + "]"
	}
	return fmt.Sprintf("%s %s %.0ffps", flag("locked", locked), flag("blocked", blocked), fps)
}

// FieldPane draws the marker moved by the player layer.
type FieldPane struct {
	Renderer   Renderer
	Dims       func() (x, y, w, h int)
	Stylesheet *styling.Stylesheet

	// Position returns the marker position, both coordinates in [0,1].
	Position func() (float64, float64)
}

// Dimensions returns the pane's dimensions.
func (p *FieldPane) Dimensions() (x, y, w, h int) { return p.Dims() }

// Draw draws the field and the marker.
func (p *FieldPane) Draw() {
	x, y, w, h := p.Dimensions()
	if w <= 0 || h <= 0 {
		return
	}
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)
	mx, my := p.Position()
	col := x + int(math.Round(mx*float64(w-1)))
	row := y + int(math.Round(my*float64(h-1)))
	p.Renderer.DrawText(col, row, 1, 1, p.Stylesheet.Marker, "@")
}

// LogPane draws the most recent log entries, newest first.
type LogPane struct {
	Renderer   Renderer
	Dims       func() (x, y, w, h int)
	Stylesheet *styling.Stylesheet

	LogReader potatolog.LogReader
}

// Dimensions returns the pane's dimensions.
func (p *LogPane) Dimensions() (x, y, w, h int) { return p.Dims() }

// Draw draws the log entries.
func (p *LogPane) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.LogDefault)

	entries := p.LogReader.Get()
	row := y
	for i := len(entries) - 1; i >= 0 && row < y+h; i-- {
		entry := entries[i]
		level, _ := entry[zerolog.LevelFieldName].(string)
		style := p.Stylesheet.LogDefault
		switch level {
		case zerolog.WarnLevel.String():
			style = p.Stylesheet.LogWarn
		case zerolog.ErrorLevel.String(), zerolog.FatalLevel.String():
			style = p.Stylesheet.LogError
		}
		p.Renderer.DrawText(x, row, w, 1, style, FormatLogEntry(entry))
		row++
	}
}

var levelAbbreviations = map[string]string{
	zerolog.TraceLevel.String(): "TRC",
	zerolog.DebugLevel.String(): "DBG",
	zerolog.InfoLevel.String():  "INF",
	zerolog.WarnLevel.String():  "WRN",
	zerolog.ErrorLevel.String(): "ERR",
	zerolog.FatalLevel.String(): "FTL",
	zerolog.PanicLevel.String(): "PNC",
}

// FormatLogEntry formats a log entry as a single line, e.g.
//
//	WRN cannot pop the root layer layer=player
func FormatLogEntry(entry potatolog.LogEntry) string {
	level, _ := entry[zerolog.LevelFieldName].(string)
	message, _ := entry[zerolog.MessageFieldName].(string)

	var b strings.Builder
	abbreviation, ok := levelAbbreviations[level]
	if !ok {
		abbreviation = "???"
	}
	b.WriteString(abbreviation)
	b.WriteString(" ")
	b.WriteString(message)
	for _, field := range []string{"op", "layer", "action", "error"} {
		if v, ok := entry[field]; ok {
			fmt.Fprintf(&b, " %s=%v", field, v)
		}
	}
	return b.String()
}
