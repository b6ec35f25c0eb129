package styling

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// DrawStyling is style information used for rendering text.
// It holds foreground and background color as well as modifiers such as
// italicization and can be converted to a tcell.Style via AsTcell.
type DrawStyling interface {
	AsTcell() tcell.Style

	DefaultDimmed() DrawStyling
	DarkenedBG(percentage int) DrawStyling

	Bolded() DrawStyling
}

// FallbackStyling is a DrawStyling that holds non-renderer-specific colors.
type FallbackStyling struct {
	fg colorful.Color
	bg colorful.Color

	bold, italic, underlined bool
}

// AsTcell returns this styling as a tcell.Style.
func (s *FallbackStyling) AsTcell() tcell.Style {
	fg := colorfulColorToTcellColor(s.fg)
	bg := colorfulColorToTcellColor(s.bg)

	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	return style.Bold(s.bold).Italic(s.italic).Underline(s.underlined)
}

// DefaultDimmed returns a copy of this styling with both colors lightened by a
// default value.
func (s *FallbackStyling) DefaultDimmed() DrawStyling {
	result := s.clone()
	result.fg = lightenColorfulColor(result.fg, 50)
	result.bg = lightenColorfulColor(result.bg, 50)
	return result
}

// DarkenedBG returns a copy of this styling with the background color darkened
// by the requested percentage.
func (s *FallbackStyling) DarkenedBG(percentage int) DrawStyling {
	result := s.clone()
	result.bg = darkenColorfulColor(result.bg, percentage)
	return result
}

// Bolded returns a copy of this styling which is guaranteed to be bolded.
func (s *FallbackStyling) Bolded() DrawStyling {
	result := s.clone()
	result.bold = true
	return result
}

func (s *FallbackStyling) clone() *FallbackStyling {
	newS := *s
	return &newS
}

// StyleFromHex constructs a styling from two colors in hexadecimal or HTML
// notation, e.g., '#ff0000' or '#BEEF42'.
func StyleFromHex(fg, bg string) (*FallbackStyling, error) {
	fgColor, err := colorfulColorFromHexString(fg)
	if err != nil {
		return nil, err
	}
	bgColor, err := colorfulColorFromHexString(bg)
	if err != nil {
		return nil, err
	}
	return &FallbackStyling{fg: fgColor, bg: bgColor}, nil
}
