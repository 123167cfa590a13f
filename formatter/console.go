package formatter

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/arbor"
	"golang.org/x/term"
)

// Class classifies the parts of a rendered tree for colorization.
type Class int

const (
	// NameClass is the display label header of the tree.
	NameClass Class = iota
	// BranchClass are values of nodes with children.
	BranchClass
	// LeafClass are values of nodes without children.
	LeafClass
	// GuideClass are the box-drawing guide lines.
	GuideClass
)

// ConsoleTree is a type for outputting trees to a console with a fixed
// width font. It uses colors to visualize node classes.
type ConsoleTree struct {
	colors map[Class]*color.Color
}

// NewConsoleTree creates a new console formatter.
//
// colors is a map from node classes to colors, used for display. It may
// contain just a subset of the classes; unmapped classes are printed
// unstyled. A nil map selects a default palette.
func NewConsoleTree(colors map[Class]*color.Color) *ConsoleTree {
	ct := &ConsoleTree{}
	if colors == nil {
		ct.colors = makeDefaultPalette()
	} else {
		ct.colors = colors
	}
	return ct
}

func makeDefaultPalette() map[Class]*color.Color {
	palette := map[Class]*color.Color{
		NameClass:   color.New(color.FgCyan, color.Bold),
		BranchClass: color.New(color.FgBlue),
		LeafClass:   color.New(color.FgGreen),
	}
	return palette
}

// Print outputs a tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
// Config.Context will also be created based on heuristics from the user
// environment.
func (ct *ConsoleTree) Print(t arbor.Tree[string], config *Config) error {
	return Output(t, os.Stdout, config, ct)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
