package arbor

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// Order selects the sequence in which Flatten, Walk and Each emit node
// values.
//
// The in-order case is a generalization of binary in-order traversal to
// n-ary trees: the first child is treated as the left subtree, the
// node's value is emitted after it, and the remaining children follow as
// a flat in-order group.
//
// Reference tree and the resulting sequences:
//
//	        1
//	       / \
//	      /   \
//	     /     \
//	    2       3
//	   / \     /
//	  4   5   6
//	 /       / \
//	7       8   9
//
//	PreOrder     1 2 4 7 5 3 6 8 9   (= depth-first)
//	InOrder      7 4 2 5 1 8 6 9 3
//	PostOrder    7 4 5 2 8 9 6 3 1
//	LevelOrder   1 2 3 4 5 6 7 8 9   (= breadth-first)
type Order int

const (
	PreOrder Order = iota
	InOrder
	PostOrder
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	}
	return "unknown order"
}

// Flatten collects all node values of the tree into a slice, in the
// given traversal order. The empty tree flattens to nil in any order.
// An order outside the closed set of four returns ErrUnknownOrder.
//
// The result is fully materialized. Pre-, in- and post-order recurse
// with a call stack bounded by the depth of the tree; level-order uses
// an explicit queue bounded by the maximum width of the tree instead.
func (t Tree[T]) Flatten(order Order) ([]T, error) {
	if order < PreOrder || order > LevelOrder {
		return nil, ErrUnknownOrder
	}
	if t.root == nil {
		return nil, nil
	}
	switch order {
	case PreOrder:
		return preOrder(t.root, nil), nil
	case InOrder:
		return inOrder(t.root, nil), nil
	case PostOrder:
		return postOrder(t.root, nil), nil
	}
	return levelOrder(t.root), nil
}

func preOrder[T comparable](n *node[T], acc []T) []T {
	acc = append(acc, n.value)
	for _, child := range n.children {
		acc = preOrder(child, acc)
	}
	return acc
}

func inOrder[T comparable](n *node[T], acc []T) []T {
	if len(n.children) == 0 {
		return append(acc, n.value)
	}
	acc = inOrder(n.children[0], acc)
	acc = append(acc, n.value)
	for _, child := range n.children[1:] {
		acc = inOrder(child, acc)
	}
	return acc
}

func postOrder[T comparable](n *node[T], acc []T) []T {
	for _, child := range n.children {
		acc = postOrder(child, acc)
	}
	return append(acc, n.value)
}

// levelOrder visits nodes breadth-first, one level after the other, each
// level left to right. The iterative formulation with a FIFO queue keeps
// stack usage independent of tree depth.
func levelOrder[T comparable](n *node[T]) []T {
	acc := make([]T, 0, 16)
	queue := []*node[T]{n}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		acc = append(acc, next.value)
		queue = append(queue, next.children...)
	}
	return acc
}

// Walk returns an iterator over all node values in the given traversal
// order. The sequence is materialized up front and restartable. An
// unknown order yields nothing; the error is traced.
func (t Tree[T]) Walk(order Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		values, err := t.Flatten(order)
		if err != nil {
			tracer().Errorf("tree walk: %v", err)
			return
		}
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// Each visits all node values in the given traversal order. Iteration
// stops at the first callback error and returns that error to the
// caller.
func (t Tree[T]) Each(order Order, f func(T) error) error {
	if f == nil {
		return ErrIllegalArguments
	}
	values, err := t.Flatten(order)
	if err != nil {
		return err
	}
	for _, v := range values {
		if err := f(v); err != nil {
			return err
		}
	}
	return nil
}
