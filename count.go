package arbor

// BranchCount counts the branches of the tree. The empty tree and a
// leaf have no branches.
func (t Tree[T]) BranchCount() int {
	return branchCount(t.root)
}

func branchCount[T comparable](n *node[T]) int {
	if n == nil || len(n.children) == 0 {
		return 0
	}
	count := 1
	for _, child := range n.children {
		count += branchCount(child)
	}
	return count
}

// LeafCount counts the leaves of the tree. The empty tree has no leaves.
func (t Tree[T]) LeafCount() int {
	return leafCount(t.root)
}

func leafCount[T comparable](n *node[T]) int {
	if n == nil {
		return 0
	}
	if len(n.children) == 0 {
		return 1
	}
	count := 0
	for _, child := range n.children {
		count += leafCount(child)
	}
	return count
}

// NodeCount counts the nodes of the tree, i.e. branches and leaves.
// The empty tree has no nodes.
func (t Tree[T]) NodeCount() int {
	return nodeCount(t.root)
}

func nodeCount[T comparable](n *node[T]) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, child := range n.children {
		count += nodeCount(child)
	}
	return count
}

// Contains reports whether element occurs in the tree, comparing values
// with ==. The search proceeds in pre-order and stops at the first
// match.
func (t Tree[T]) Contains(element T) bool {
	return contains(t.root, element)
}

func contains[T comparable](n *node[T], element T) bool {
	if n == nil {
		return false
	}
	if n.value == element {
		return true
	}
	for _, child := range n.children {
		if contains(child, element) {
			return true
		}
	}
	return false
}
