package arbor

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Tree is an immutable n-ary tree of values.
//
// A tree created by
//
//	Tree[int]{}
//
// is a valid object and represents the empty tree. Every other tree is a
// node carrying exactly one value and an ordered sequence of child
// trees. A tree is exactly one of empty, leaf or branch; these cases are
// mutually exclusive.
//
// Trees are never mutated after construction. All operations are pure
// functions of their input, and new trees share the child nodes of their
// inputs structurally.
type Tree[T comparable] struct {
	root *node[T]
	name string
}

// node is the recursive backing representation of trees. Nodes are never
// mutated after construction, so subtrees may be referenced by any number
// of parent trees.
type node[T comparable] struct {
	value    T
	children []*node[T]
}

// DefaultName is the display label of trees not built through a Shape
// (see Tree.Name).
const DefaultName = "Tree"

// Empty returns the empty tree. It is equivalent to the zero value
// Tree[T]{}.
func Empty[T comparable]() Tree[T] {
	return Tree[T]{}
}

// NewLeaf creates a tree consisting of a single node carrying v.
func NewLeaf[T comparable](v T) Tree[T] {
	return Tree[T]{root: &node[T]{value: v}}
}

// NewBranch creates a tree with value v and the given subtrees as
// children, in order. Empty subtrees are skipped, as an empty child would
// be indistinguishable from no child at all; NewBranch(v) therefore
// creates a leaf.
func NewBranch[T comparable](v T, children ...Tree[T]) Tree[T] {
	n := &node[T]{value: v}
	for _, child := range children {
		if child.root == nil {
			continue
		}
		n.children = append(n.children, child.root)
	}
	return Tree[T]{root: n}
}

// IsEmpty reports whether this is the empty tree.
func (t Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// IsLeaf reports whether the tree is a node without children. The empty
// tree is no node and by definition not a leaf.
func (t Tree[T]) IsLeaf() bool {
	return t.root != nil && len(t.root.children) == 0
}

// IsBranch reports whether the tree is a node with at least one child.
// The empty tree is no node and by definition not a branch.
func (t Tree[T]) IsBranch() bool {
	return t.root != nil && len(t.root.children) > 0
}

// Value returns the value at the root of the tree.
//
// Requesting the value of the empty tree is a programming error and
// returns ErrNoValue.
func (t Tree[T]) Value() (T, error) {
	if t.root == nil {
		var none T
		return none, ErrNoValue
	}
	return t.root.value, nil
}

// Children returns the ordered sequence of child trees: nil for the
// empty tree and for leaves, non-nil for branches. Children carry the
// display label of their parent tree.
func (t Tree[T]) Children() []Tree[T] {
	if t.root == nil || len(t.root.children) == 0 {
		return nil
	}
	children := make([]Tree[T], len(t.root.children))
	for i, c := range t.root.children {
		children[i] = Tree[T]{root: c, name: t.name}
	}
	return children
}

// Degree returns the number of direct children of the tree's root node,
// 0 for the empty tree and for leaves.
func (t Tree[T]) Degree() int {
	if t.root == nil {
		return 0
	}
	return len(t.root.children)
}

// Name returns the display label of the tree, e.g. "BinaryTree". The
// label identifies the construction flavor of a tree and is used by
// rendering exclusively; it never participates in equality (see Equal).
func (t Tree[T]) Name() string {
	if t.name == "" {
		return DefaultName
	}
	return t.name
}

// Named returns the same tree under a different display label.
func (t Tree[T]) Named(name string) Tree[T] {
	t.name = name
	return t
}
