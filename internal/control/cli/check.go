package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ja-he/inputlayers/internal/config"
	"github.com/ja-he/inputlayers/internal/input"
	"github.com/ja-he/inputlayers/internal/layer"
)

// CheckCommand holds the flags of the `check` command.
type CheckCommand struct {
	Config string `short:"c" long:"config" description:"Specify the config file (default: $INPUTLAYERS_HOME/config.yaml)" value-name:"<file>"`
}

// Execute validates the configuration and prints its layers.
func (command *CheckCommand) Execute(args []string) error {
	cfg, err := config.Load(configPath(command.Config), config.Dark)
	if err != nil {
		return err
	}
	return check(cfg, os.Stdout)
}

// check sets up a layer stack for the given configuration and describes it.
func check(cfg config.Config, w io.Writer) error {
	keyboard, err := input.NewKeyboard(cfg)
	if err != nil {
		return err
	}
	stack, err := layer.Initialize(keyboard, layer.Config{Root: cfg.RootLayer()})
	if err != nil {
		return err
	}
	defer stack.Shutdown()

	root := stack.Peek()
	fmt.Fprintf(w, "root: %s (%s)\n", root.Name, root.ID)
	for _, l := range cfg.Layers {
		fmt.Fprintf(w, "layer %s\n", l.Name)
		for _, a := range l.Actions {
			kind := a.Kind
			if kind == "" {
				kind = "button"
			}
			specs := []string{}
			for _, spec := range keyboard.Keyspecs(l.Name, a.Name) {
				specs = append(specs, string(spec))
			}
			fmt.Fprintf(w, "  %s (%s): %s\n", a.Name, kind, strings.Join(specs, " "))
		}
	}
	return nil
}
