package arbor

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCountsOfReferenceTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := refTree()
	if n := tree.BranchCount(); n != 5 {
		t.Errorf("branch count = %d, should be 5", n)
	}
	if n := tree.LeafCount(); n != 4 {
		t.Errorf("leaf count = %d, should be 4", n)
	}
	if n := tree.NodeCount(); n != 9 {
		t.Errorf("node count = %d, should be 9", n)
	}
}

func TestCountsOfDegenerateTrees(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	empty := Empty[int]()
	if empty.BranchCount() != 0 || empty.LeafCount() != 0 || empty.NodeCount() != 0 {
		t.Errorf("all counts of the empty tree should be 0")
	}
	leaf := NewLeaf(42)
	if leaf.BranchCount() != 0 {
		t.Errorf("branch count of leaf = %d, should be 0", leaf.BranchCount())
	}
	if leaf.LeafCount() != 1 || leaf.NodeCount() != 1 {
		t.Errorf("leaf and node count of leaf should be 1")
	}
}

func TestCountInvariants(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	trees := []Tree[int]{
		Empty[int](),
		NewLeaf(1),
		NewBranch(1, NewLeaf(2)),
		refTree(),
		NewBranch(1, NewBranch(2, NewBranch(3, NewLeaf(4)))),
	}
	for i, tree := range trees {
		if (tree.NodeCount() == 0) != tree.IsEmpty() {
			t.Errorf("tree #%d: node count 0 iff empty violated", i)
		}
		if !tree.IsEmpty() && tree.NodeCount() != tree.LeafCount()+tree.BranchCount() {
			t.Errorf("tree #%d: node count %d != leaves %d + branches %d", i,
				tree.NodeCount(), tree.LeafCount(), tree.BranchCount())
		}
	}
}

func TestContains(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := refTree()
	if !tree.Contains(9) {
		t.Errorf("expected tree to contain 9")
	}
	if tree.Contains(10) {
		t.Errorf("expected tree to not contain 10")
	}
	if Empty[int]().Contains(1) {
		t.Errorf("empty tree contains nothing")
	}
}

func TestContainsMatchesPreOrderMembership(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := refTree()
	values, err := tree.Flatten(PreOrder)
	if err != nil {
		t.Fatal(err.Error())
	}
	seen := make(map[int]bool)
	for _, v := range values {
		seen[v] = true
	}
	for candidate := 0; candidate <= 12; candidate++ {
		if tree.Contains(candidate) != seen[candidate] {
			t.Errorf("contains(%d) = %v, pre-order membership says %v",
				candidate, tree.Contains(candidate), seen[candidate])
		}
	}
}
