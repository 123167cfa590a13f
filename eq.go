package arbor

import "hash/maphash"

// Equal compares two trees structurally: both are empty, or both are
// nodes with equal values (compared with ==) and pairwise equal child
// sequences of the same length. Display labels do not participate, so
// trees built through different shapes compare equal whenever their
// values and structure agree. Comparing trees over different value
// types is prevented at compile time.
func Equal[T comparable](a, b Tree[T]) bool {
	return equalNodes(a.root, b.root)
}

// Equals reports whether t and other are structurally equal, see Equal.
func (t Tree[T]) Equals(other Tree[T]) bool {
	return equalNodes(t.root, other.root)
}

func equalNodes[T comparable](a, b *node[T]) bool {
	if a == b {
		return true // covers shared subtrees and both-empty
	}
	if a == nil || b == nil {
		return false
	}
	if a.value != b.value || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !equalNodes(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

// hashSeed keeps value hashes consistent for the lifetime of the process.
var hashSeed = maphash.MakeSeed()

// Hash returns a hash of the tree's values and structure. The empty tree
// hashes to 1; a node hash starts from 31 + hash(value) and folds in
// each child hash h as acc*31 + h.
//
// Structurally equal trees always hash identically. Hashes are stable
// within a single process, but not across processes.
func (t Tree[T]) Hash() uint64 {
	return hashNode(t.root)
}

func hashNode[T comparable](n *node[T]) uint64 {
	if n == nil {
		return 1
	}
	h := 31 + maphash.Comparable(hashSeed, n.value)
	for _, child := range n.children {
		h = h*31 + hashNode(child)
	}
	return h
}
