package formatter

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Config represents a set of configuration parameters for formatting a
// tree.
type Config struct {
	LineWidth int            // line width in terminal cells
	Context   *uax11.Context // language and script context for width calculation
}

// guide-line connectors; each occupies three terminal cells.
const (
	guideChild     = "├─ "
	guideLastChild = "└─ "
	guideCont      = "│  "
	guideBlank     = "   "
)

// Output formats a tree to w, one node per line, with guide lines
// showing the structure. fmtr may be nil, selecting a formatter with the
// default palette. If config is nil, it is created from the current
// terminal's properties and the user environment; a config without
// Context is completed with uax11.LatinContext.
//
// Node labels are collapsed to a single line and truncated to the
// configured line width, never splitting grapheme clusters.
func Output[T comparable](t arbor.Tree[T], w io.Writer, config *Config, fmtr *ConsoleTree) error {
	if w == nil {
		return arbor.ErrIllegalArguments
	}
	if fmtr == nil {
		fmtr = NewConsoleTree(nil)
	}
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	if config.LineWidth <= 0 {
		config.LineWidth = 65
	}
	grapheme.SetupGraphemeClasses()
	if err := fmtr.styledLine(w, NameClass, t.Name()+":"); err != nil {
		return err
	}
	if t.IsEmpty() {
		return nil
	}
	return outputNode(t, w, "", "", config, fmtr)
}

// outputNode writes the line for the root node of t, prefixed by head,
// and recurses into the children with guide-line continuations derived
// from rest.
func outputNode[T comparable](t arbor.Tree[T], w io.Writer, head, rest string, config *Config, fmtr *ConsoleTree) error {
	v, err := t.Value()
	if err != nil {
		return err
	}
	if err := fmtr.styled(w, GuideClass, head); err != nil {
		return err
	}
	avail := config.LineWidth - displayWidth(head, config.Context)
	label := truncate(labelText(v), avail, config.Context)
	class := LeafClass
	if t.IsBranch() {
		class = BranchClass
	}
	if err := fmtr.styledLine(w, class, label); err != nil {
		return err
	}
	children := t.Children()
	for i, child := range children {
		connector, cont := guideChild, guideCont
		if i == len(children)-1 {
			connector, cont = guideLastChild, guideBlank
		}
		if err := outputNode(child, w, rest+connector, rest+cont, config, fmtr); err != nil {
			return err
		}
	}
	return nil
}

func (ct *ConsoleTree) styled(w io.Writer, class Class, s string) error {
	if s == "" {
		return nil
	}
	if c, ok := ct.colors[class]; ok && c != nil {
		_, err := c.Fprint(w, s)
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func (ct *ConsoleTree) styledLine(w io.Writer, class Class, s string) error {
	if err := ct.styled(w, class, s); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// labelText renders a node value on a single line, whitespace runs
// collapsed to single spaces.
func labelText(v any) string {
	return strings.Join(strings.Fields(fmt.Sprint(v)), " ")
}

// displayWidth returns the width of s in terminal cells, respecting
// East Asian width properties for the given context.
func displayWidth(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, context)
}

// truncate shortens label to at most width terminal cells, appending an
// ellipsis when text had to be cut. Cut candidates are measured in
// grapheme clusters, so no visual character is ever split.
func truncate(label string, width int, context *uax11.Context) string {
	if width <= 0 {
		return ""
	}
	if displayWidth(label, context) <= width {
		return label
	}
	runes := []rune(label)
	for end := len(runes) - 1; end > 0; end-- {
		short := string(runes[:end]) + "…"
		if displayWidth(short, context) <= width {
			return short
		}
	}
	return "…"
}
