// Package config holds the layer definitions and styling as read from a
// configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/inputlayers/internal/action"
)

// Config is the configuration data as present in a config file at
// '${INPUTLAYERS_HOME}/config.yaml'.
type Config struct {
	// Root names the root layer; if empty, the first layer is the root.
	Root string `yaml:"root,omitempty"`
	// HoldFrames is how many idle frames a key-actuated action stays pressed.
	HoldFrames int        `yaml:"hold-frames,omitempty"`
	Layers     []Layer    `yaml:"layers"`
	Stylesheet Stylesheet `yaml:"stylesheet"`
}

// A Layer as defined in a config file, i.E. a named group of actions.
type Layer struct {
	Name    string   `yaml:"name"`
	Actions []Action `yaml:"actions"`
}

// An Action as defined in a config file.
//
// Kind is one of "button" (default), "axis" or "vector".
type Action struct {
	Name string       `yaml:"name"`
	Kind string       `yaml:"kind,omitempty"`
	Keys []KeyBinding `yaml:"keys"`
}

// A KeyBinding binds a single key to an action.
//
// Value is the value the key actuates the action with; for buttons it may be
// omitted, for axes it has one element, for vectors two.
type KeyBinding struct {
	Key   string    `yaml:"key"`
	Value []float64 `yaml:"value,omitempty"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal      Styling `yaml:"normal"`
	Status      Styling `yaml:"status"`
	LayerRoot   Styling `yaml:"layer-root"`
	LayerActive Styling `yaml:"layer-active"`
	LayerOther  Styling `yaml:"layer-other"`
	Marker      Styling `yaml:"marker"`
	LogDefault  Styling `yaml:"log-default"`
	LogWarn     Styling `yaml:"log-warn"`
	LogError    Styling `yaml:"log-error"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// Load reads the configuration at the given path over the defaults for the
// given theme. A missing file yields the defaults.
func Load(path string, defaultTheme ColorschemeType) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(defaultTheme), nil
	} else if err != nil {
		return Config{}, fmt.Errorf("could not read config file '%s' (%w)", path, err)
	}
	return ParseConfigAugmentDefaults(defaultTheme, data)
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
// The result is validated.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)
	if err := result.Validate(); err != nil {
		return defaultConfig, err
	}

	return result, nil
}

// Validate checks the layer definitions for consistency.
func (c Config) Validate() error {
	if len(c.Layers) == 0 {
		return fmt.Errorf("no layers defined")
	}
	if c.HoldFrames < 0 {
		return fmt.Errorf("negative hold-frames (%d)", c.HoldFrames)
	}

	layerNames := map[string]bool{}
	for i, l := range c.Layers {
		if l.Name == "" {
			return fmt.Errorf("layer #%d has no name", i)
		}
		if layerNames[l.Name] {
			return fmt.Errorf("duplicate layer '%s'", l.Name)
		}
		layerNames[l.Name] = true

		actionNames := map[string]bool{}
		for _, a := range l.Actions {
			if a.Name == "" {
				return fmt.Errorf("unnamed action in layer '%s'", l.Name)
			}
			if actionNames[a.Name] {
				return fmt.Errorf("duplicate action '%s' in layer '%s'", a.Name, l.Name)
			}
			actionNames[a.Name] = true

			kind, err := action.KindFromString(a.Kind)
			if err != nil {
				return fmt.Errorf("action '%s' in layer '%s': %w", a.Name, l.Name, err)
			}
			for _, k := range a.Keys {
				if err := validateValue(kind, k.Value); err != nil {
					return fmt.Errorf("key '%s' of action '%s' in layer '%s': %w", k.Key, a.Name, l.Name, err)
				}
			}
		}
	}

	if c.Root != "" && !layerNames[c.Root] {
		return fmt.Errorf("root layer '%s' is not defined", c.Root)
	}
	return nil
}

// RootLayer returns the name of the root layer.
func (c Config) RootLayer() string {
	if c.Root != "" {
		return c.Root
	}
	if len(c.Layers) > 0 {
		return c.Layers[0].Name
	}
	return ""
}

func validateValue(kind action.Kind, value []float64) error {
	switch kind {
	case action.KindButton:
		if len(value) > 1 {
			return fmt.Errorf("button takes at most one value, got %d", len(value))
		}
	case action.KindAxis:
		if len(value) != 1 {
			return fmt.Errorf("axis takes exactly one value, got %d", len(value))
		}
	case action.KindVector:
		if len(value) != 2 {
			return fmt.Errorf("vector takes exactly two values, got %d", len(value))
		}
	}
	return nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	if len(augment.Layers) > 0 {
		result.Layers = augment.Layers
		result.Root = augment.Root
	} else if augment.Root != "" {
		result.Root = augment.Root
	}
	if augment.HoldFrames != 0 {
		result.HoldFrames = augment.HoldFrames
	}

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.Status.overwriteIfDefined(augment.Status)
	result.LayerRoot.overwriteIfDefined(augment.LayerRoot)
	result.LayerActive.overwriteIfDefined(augment.LayerActive)
	result.LayerOther.overwriteIfDefined(augment.LayerOther)
	result.Marker.overwriteIfDefined(augment.Marker)
	result.LogDefault.overwriteIfDefined(augment.LogDefault)
	result.LogWarn.overwriteIfDefined(augment.LogWarn)
	result.LogError.overwriteIfDefined(augment.LogError)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		s.Style = &FontStyle{
			Bold:       augment.Style.Bold,
			Italic:     augment.Style.Italic,
			Underlined: augment.Style.Underlined,
		}
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
