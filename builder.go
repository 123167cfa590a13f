package arbor

// Builder incrementally stages child trees and finalizes them under a
// common root value.
//
// Builder collects children in order and materializes the tree only when
// Tree() is called. This keeps construction logic in one place while the
// resulting tree stays immutable.
type Builder[T comparable] struct {
	value T
	name  string

	// front keeps prepended children in reverse logical order.
	front []*node[T]
	// back keeps appended children in logical order.
	back []*node[T]

	done  bool
	dirty bool
	tree  Tree[T]
}

// NewBuilder creates a new builder for a tree rooted at value.
func NewBuilder[T comparable](value T) *Builder[T] {
	return &Builder[T]{value: value}
}

// Named sets the display label of the tree under construction and
// returns the builder for chaining.
func (b *Builder[T]) Named(name string) *Builder[T] {
	if b != nil {
		b.name = name
	}
	return b
}

// Tree returns the tree built from the root value and all staged
// children.
//
// It is illegal to continue adding children after Tree has been called,
// but Tree may be called multiple times.
func (b *Builder[T]) Tree() Tree[T] {
	if b == nil {
		return Tree[T]{}
	}
	if b.dirty || b.tree.root == nil {
		b.tree = b.buildTree()
		b.dirty = false
	}
	b.done = true
	if b.tree.IsLeaf() {
		tracer().Debugf("tree builder: no children staged, tree is a leaf")
	}
	return b.tree
}

// Reset drops the staged build and prepares the builder for a fresh
// build rooted at value.
func (b *Builder[T]) Reset(value T) {
	b.value = value
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.tree = Tree[T]{}
}

// Append appends a child tree to the staged build. Appending the empty
// tree is a no-op.
func (b *Builder[T]) Append(child Tree[T]) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTreeCompleted
	}
	if child.root == nil {
		return nil
	}
	b.back = append(b.back, child.root)
	b.dirty = true
	return nil
}

// Prepend prepends a child tree to the staged build. Prepending the
// empty tree is a no-op.
func (b *Builder[T]) Prepend(child Tree[T]) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTreeCompleted
	}
	if child.root == nil {
		return nil
	}
	b.front = append(b.front, child.root)
	b.dirty = true
	return nil
}

func (b *Builder[T]) buildTree() Tree[T] {
	return Tree[T]{
		root: &node[T]{value: b.value, children: b.orderedChildren()},
		name: b.name,
	}
}

func (b *Builder[T]) orderedChildren() []*node[T] {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]*node[T], 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	out = append(out, b.back...)
	return out
}
