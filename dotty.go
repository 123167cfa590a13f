package arbor

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T comparable] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T comparable]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Shared subtrees appear as a single node with
// multiple incoming edges.
func Tree2Dot[T comparable](t Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if t.root == nil {
		fmt.Fprintf(w, "\t\"1\" [label=\"()\" shape=box style=dotted];\n")
	} else {
		ids := newtable[T]()
		dotNode(t.root, &ids, w)
	}
	io.WriteString(w, "}\n")
}

// dotNode emits the declaration for n and the edges to its children,
// returning the id allocated for n. Nodes already emitted (shared
// subtrees) are not declared twice.
func dotNode[T comparable](n *node[T], ids *nodeids[T], w io.Writer) int {
	assert(n != nil, "dotNode called with nil node")
	if id := ids.find(n); id > 0 {
		return id
	}
	id := ids.alloc(n)
	label := dotEscape(valueText(n.value))
	fmt.Fprintf(w, "\t\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(len(n.children) == 0))
	for _, child := range n.children {
		childID := dotNode(child, ids, w)
		fmt.Fprintf(w, "\t\"%d\" -> \"%d\";\n", id, childID)
	}
	return id
}

func nodeDotStyles(isLeaf bool) string {
	if isLeaf {
		return "shape=box style=filled fillcolor=grey92"
	}
	return "shape=ellipse"
}

func dotEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
