package arbor

// Shape is a construction policy for trees. Concrete tree flavors do
// not exist as separate types; instead a Shape carries a display label
// and a validation rule, and trees built through it are labeled and
// checked accordingly. Two shapes producing the same values and
// structure produce equal trees (see Equal).
type Shape[T comparable] struct {
	name      string
	maxDegree int // 0 means unbounded
}

// NewShape creates a construction policy with a display label and a
// maximum number of children per node; a maxDegree of 0 means unbounded
// branching.
func NewShape[T comparable](name string, maxDegree int) Shape[T] {
	if name == "" {
		name = DefaultName
	}
	if maxDegree < 0 {
		maxDegree = 0
	}
	return Shape[T]{name: name, maxDegree: maxDegree}
}

// Rose is the construction policy for trees with arbitrary branching.
func Rose[T comparable]() Shape[T] {
	return NewShape[T]("RoseTree", 0)
}

// Binary is the construction policy for trees with at most two children
// per node.
func Binary[T comparable]() Shape[T] {
	return NewShape[T]("BinaryTree", 2)
}

// Name returns the display label trees of this shape will carry.
func (s Shape[T]) Name() string {
	if s.name == "" {
		return DefaultName
	}
	return s.name
}

// MaxDegree returns the maximum number of children per node, 0 for
// unbounded branching.
func (s Shape[T]) MaxDegree() int {
	return s.maxDegree
}

// Empty returns the empty tree of this shape.
func (s Shape[T]) Empty() Tree[T] {
	return Tree[T]{name: s.name}
}

// Leaf creates a single-node tree carrying v.
func (s Shape[T]) Leaf(v T) Tree[T] {
	return NewLeaf(v).Named(s.name)
}

// Branch creates a tree with value v and the given subtrees as
// children, in order. Empty subtrees are skipped. If the remaining
// children exceed the shape's maximum degree, Branch fails with
// ErrShapeViolation.
func (s Shape[T]) Branch(v T, children ...Tree[T]) (Tree[T], error) {
	t := NewBranch(v, children...)
	if s.maxDegree > 0 && t.Degree() > s.maxDegree {
		return s.Empty(), ErrShapeViolation
	}
	return t.Named(s.name), nil
}
