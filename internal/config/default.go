package config

// Default returns the default configuration for the given colorscheme type
// (light or dark): a "player" root layer, a "menu" and a "dialog" layer.
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		Root:       "player",
		HoldFrames: 2,
		Layers: []Layer{
			{
				Name: "player",
				Actions: []Action{
					{Name: "move", Kind: "vector", Keys: []KeyBinding{
						{Key: "h", Value: []float64{-1, 0}},
						{Key: "j", Value: []float64{0, 1}},
						{Key: "k", Value: []float64{0, -1}},
						{Key: "l", Value: []float64{1, 0}},
						{Key: "<left>", Value: []float64{-1, 0}},
						{Key: "<down>", Value: []float64{0, 1}},
						{Key: "<up>", Value: []float64{0, -1}},
						{Key: "<right>", Value: []float64{1, 0}},
					}},
					{Name: "jump", Keys: []KeyBinding{{Key: "<space>"}}},
					{Name: "open-menu", Keys: []KeyBinding{{Key: "m"}}},
				},
			},
			{
				Name: "menu",
				Actions: []Action{
					{Name: "navigate", Kind: "axis", Keys: []KeyBinding{
						{Key: "j", Value: []float64{1}},
						{Key: "k", Value: []float64{-1}},
					}},
					{Name: "confirm", Keys: []KeyBinding{{Key: "<cr>"}}},
					{Name: "back", Keys: []KeyBinding{{Key: "<esc>"}, {Key: "q"}}},
				},
			},
			{
				Name: "dialog",
				Actions: []Action{
					{Name: "accept", Keys: []KeyBinding{{Key: "y"}}},
					{Name: "decline", Keys: []KeyBinding{{Key: "n"}, {Key: "<esc>"}}},
				},
			},
		},
		Stylesheet: defaultStylesheet(colorschemeType),
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Light {
		return Stylesheet{
			Normal:      Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			Status:      Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			LayerRoot:   Styling{Fg: "#000000", Bg: "#ffe680", Style: &FontStyle{Bold: true}},
			LayerActive: Styling{Fg: "#000000", Bg: "#80ff80", Style: &FontStyle{Bold: true}},
			LayerOther:  Styling{Fg: "#404040", Bg: "#e0e0e0", Style: &FontStyle{}},
			Marker:      Styling{Fg: "#ffffff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			LogDefault:  Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			LogWarn:     Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
			LogError:    Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
		}
	}
	return Stylesheet{
		Normal:      Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		Status:      Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{}},
		LayerRoot:   Styling{Fg: "#000000", Bg: "#ccb851", Style: &FontStyle{Bold: true}},
		LayerActive: Styling{Fg: "#000000", Bg: "#5acc5a", Style: &FontStyle{Bold: true}},
		LayerOther:  Styling{Fg: "#c0c0c0", Bg: "#303030", Style: &FontStyle{}},
		Marker:      Styling{Fg: "#ffffff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
		LogDefault:  Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		LogWarn:     Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
		LogError:    Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
	}
}
