// Package cli provides the command-line interface for inputlayers.
package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ja-he/inputlayers/internal/config"
)

// CommandLineOpts are the options and commands for `go-flags` to parse the
// command line into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	DemoCommand    DemoCommand    `command:"demo" description:"Run the interactive layer stack demo"`
	CheckCommand   CheckCommand   `command:"check" description:"Validate a configuration and list its layers"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true"`
}

// Opts holds the parsed command line.
var Opts CommandLineOpts

// homeDir returns the configuration directory, which is $INPUTLAYERS_HOME if
// set and ~/.config/inputlayers otherwise.
func homeDir() string {
	if home := os.Getenv("INPUTLAYERS_HOME"); home != "" {
		return strings.TrimRight(home, "/")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "inputlayers")
}

// configPath returns the given path or, if empty, the default config file.
func configPath(path string) string {
	if path != "" {
		return path
	}
	return filepath.Join(homeDir(), "config.yaml")
}

func themeFromString(s string) config.ColorschemeType {
	switch s {
	case "light":
		return config.Light
	default:
		return config.Dark
	}
}
