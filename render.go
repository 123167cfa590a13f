package arbor

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"
)

// String returns the parenthesized canonical form of the tree, see
// LispString.
func (t Tree[T]) String() string {
	return t.LispString()
}

// LispString renders the tree in a parenthesized canonical form:
//
//	Tree()                         the empty tree
//	Tree(x)                        a leaf carrying "x"
//	Tree(1 (2 (4 7) 5) (3 (6 8 9)))   a branch
//
// The display label is emitted once, at the outermost level. Output is
// deterministic and intended for diagnostics and snapshot tests, not as
// a parseable wire format.
func (t Tree[T]) LispString() string {
	body := lispBody(t.root)
	if t.IsLeaf() {
		return t.Name() + "(" + body + ")"
	}
	return t.Name() + body
}

func lispBody[T comparable](n *node[T]) string {
	if n == nil {
		return "()"
	}
	value := valueText(n.value)
	if len(n.children) == 0 {
		return value
	}
	var bf strings.Builder
	bf.WriteString("(")
	bf.WriteString(value)
	for _, child := range n.children {
		bf.WriteString(" ")
		bf.WriteString(lispBody(child))
	}
	bf.WriteString(")")
	return bf.String()
}

// IndentedString renders the tree depth-first with one line per node,
// indented by two spaces per depth level:
//
//	Tree:
//	1
//	  2
//	    4
//
// The empty tree renders as the display label and colon only.
func (t Tree[T]) IndentedString() string {
	var bf strings.Builder
	bf.WriteString(t.Name())
	bf.WriteString(":")
	indented(t.root, 0, &bf)
	return bf.String()
}

func indented[T comparable](n *node[T], depth int, bf *strings.Builder) {
	if n == nil {
		return
	}
	bf.WriteString("\n")
	bf.WriteString(strings.Repeat("  ", depth))
	bf.WriteString(valueText(n.value))
	for _, child := range n.children {
		indented(child, depth+1, bf)
	}
}

// valueText renders a node value on a single line: runs of whitespace
// are collapsed to single spaces and the result is trimmed.
func valueText[T comparable](v T) string {
	return strings.Join(strings.Fields(fmt.Sprint(v)), " ")
}
