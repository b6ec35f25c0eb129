package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ja-he/inputlayers/internal/config"
)

func TestParseConfigAugmentDefaults(t *testing.T) {

	t.Run("empty", func(t *testing.T) {
		cfg, err := config.ParseConfigAugmentDefaults(config.Dark, []byte{})
		if err != nil {
			t.Fatal(err.Error())
		}
		if cfg.RootLayer() != "player" || len(cfg.Layers) != 3 || cfg.HoldFrames != 2 {
			t.Error("empty config does not yield defaults")
		}
	})

	t.Run("layers replace defaults", func(t *testing.T) {
		yaml := `
root: game
hold-frames: 4
layers:
  - name: game
    actions:
      - name: steer
        kind: axis
        keys: [{key: a, value: [-1]}, {key: d, value: [1]}]
  - name: pause
    actions:
      - name: resume
        keys: [{key: "<esc>"}]
stylesheet:
  layer-root: {fg: "#000000", bg: "#ff0000"}
`
		cfg, err := config.ParseConfigAugmentDefaults(config.Light, []byte(yaml))
		if err != nil {
			t.Fatal(err.Error())
		}
		if cfg.RootLayer() != "game" || len(cfg.Layers) != 2 || cfg.HoldFrames != 4 {
			t.Error("unexpected config", cfg)
		}
		if steer := cfg.Layers[0].Actions[0]; steer.Kind != "axis" || len(steer.Keys) != 2 || steer.Keys[1].Value[0] != 1 {
			t.Error("unexpected action", steer)
		}
		if cfg.Stylesheet.LayerRoot.Bg != "#ff0000" {
			t.Error("style not overwritten")
		}
		if cfg.Stylesheet.LayerRoot.Style == nil || !cfg.Stylesheet.LayerRoot.Style.Bold {
			t.Error("font style of default lost")
		}
		if cfg.Stylesheet.Normal.Bg != config.Default(config.Light).Stylesheet.Normal.Bg {
			t.Error("unspecified style not defaulted")
		}
	})

	t.Run("root without layers", func(t *testing.T) {
		cfg, err := config.ParseConfigAugmentDefaults(config.Dark, []byte("root: menu"))
		if err != nil {
			t.Fatal(err.Error())
		}
		if cfg.RootLayer() != "menu" {
			t.Error("root not overwritten")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := config.ParseConfigAugmentDefaults(config.Dark, []byte("layers: {")); err == nil {
			t.Error("expected error")
		}
	})
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(c *config.Config){
		"no layers":        func(c *config.Config) { c.Layers = nil },
		"negative hold":    func(c *config.Config) { c.HoldFrames = -1 },
		"unnamed layer":    func(c *config.Config) { c.Layers[1].Name = "" },
		"duplicate layer":  func(c *config.Config) { c.Layers[1].Name = c.Layers[0].Name },
		"unnamed action":   func(c *config.Config) { c.Layers[0].Actions[0].Name = "" },
		"duplicate action": func(c *config.Config) { c.Layers[0].Actions[1].Name = c.Layers[0].Actions[0].Name },
		"unknown kind":     func(c *config.Config) { c.Layers[0].Actions[0].Kind = "trigger" },
		"vector with axis": func(c *config.Config) { c.Layers[0].Actions[0].Keys[0].Value = []float64{1} },
		"axis without":     func(c *config.Config) { c.Layers[1].Actions[0].Keys[0].Value = nil },
		"button with two":  func(c *config.Config) { c.Layers[0].Actions[1].Keys[0].Value = []float64{1, 1} },
		"unknown root":     func(c *config.Config) { c.Root = "nope" },
	} {
		t.Run(name, func(t *testing.T) {
			c := config.Default(config.Dark)
			mutate(&c)
			if err := c.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if err := config.Default(config.Dark).Validate(); err != nil {
		t.Error("default config invalid:", err.Error())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(filepath.Join(dir, "missing.yaml"), config.Dark)
	if err != nil || cfg.RootLayer() != "player" {
		t.Error("missing file does not yield defaults", err)
	}

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("layers: [{name: only}]"), 0644); err != nil {
		t.Fatal(err.Error())
	}
	cfg, err = config.Load(path, config.Dark)
	if err != nil || cfg.RootLayer() != "only" {
		t.Error("unexpected config from file", cfg, err)
	}

	if err := os.WriteFile(path, []byte("layers: [{name: a}, {name: a}]"), 0644); err != nil {
		t.Fatal(err.Error())
	}
	if _, err := config.Load(path, config.Dark); err == nil {
		t.Error("expected error for invalid file")
	}
}
