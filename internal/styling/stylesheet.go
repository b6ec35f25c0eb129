package styling

import (
	"fmt"

	"github.com/ja-he/inputlayers/internal/config"
	"github.com/ja-he/inputlayers/internal/layer"
)

// Stylesheet represents all styles used by the demo for rendering.
type Stylesheet struct {
	Normal DrawStyling
	Status DrawStyling

	LayerRoot   DrawStyling
	LayerActive DrawStyling
	LayerOther  DrawStyling

	Marker DrawStyling

	LogDefault DrawStyling
	LogWarn    DrawStyling
	LogError   DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(cfg config.Stylesheet) (*Stylesheet, error) {
	stylesheet := Stylesheet{}

	for _, s := range []struct {
		name   string
		target *DrawStyling
		source config.Styling
	}{
		{"normal", &stylesheet.Normal, cfg.Normal},
		{"status", &stylesheet.Status, cfg.Status},
		{"layer-root", &stylesheet.LayerRoot, cfg.LayerRoot},
		{"layer-active", &stylesheet.LayerActive, cfg.LayerActive},
		{"layer-other", &stylesheet.LayerOther, cfg.LayerOther},
		{"marker", &stylesheet.Marker, cfg.Marker},
		{"log-default", &stylesheet.LogDefault, cfg.LogDefault},
		{"log-warn", &stylesheet.LogWarn, cfg.LogWarn},
		{"log-error", &stylesheet.LogError, cfg.LogError},
	} {
		style, err := StyleFromConfig(s.source)
		if err != nil {
			return nil, fmt.Errorf("invalid style '%s': %w", s.name, err)
		}
		*s.target = style
	}

	return &stylesheet, nil
}

// StyleFromConfig constructs a DrawStyling from a config styling.
func StyleFromConfig(cfg config.Styling) (DrawStyling, error) {
	style, err := StyleFromHex(cfg.Fg, cfg.Bg)
	if err != nil {
		return nil, err
	}
	if cfg.Style != nil {
		style.bold = cfg.Style.Bold
		style.italic = cfg.Style.Italic
		style.underlined = cfg.Style.Underlined
	}
	return style, nil
}

// blockedDarkening is how much the active layer's background is darkened while
// its input is blocked.
const blockedDarkening = 40

// ForLayer returns the styling of a layer in a stack view. The root layer and
// the active layer are highlighted; the active root layer counts as active.
// An active layer with blocked input is drawn darkened.
func (s *Stylesheet) ForLayer(info layer.Info, active, blocked bool) DrawStyling {
	switch {
	case active && blocked:
		return s.LayerActive.DarkenedBG(blockedDarkening)
	case active:
		return s.LayerActive
	case info.IsRoot:
		return s.LayerRoot
	default:
		return s.LayerOther
	}
}
