package treehtml

import (
	"strings"
	"testing"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFromHTML(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	input := `<html><head><title>t</title></head><body><p>hello <b>world</b></p></body></html>`
	tree, err := FromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatal(err.Error())
	}
	t.Logf("tree = %s", tree.IndentedString())
	root, err := tree.Value()
	if err != nil {
		t.Fatal(err.Error())
	}
	if root != "html" {
		t.Errorf("root element = %q, should be \"html\"", root)
	}
	if tree.Name() != TreeName {
		t.Errorf("tree name = %q, should be %q", tree.Name(), TreeName)
	}
	values, err := tree.Flatten(arbor.PreOrder)
	if err != nil {
		t.Fatal(err.Error())
	}
	want := []string{"html", "head", "title", "body", "p", "b"}
	if len(values) != len(want) {
		t.Fatalf("pre-order elements = %v, should be %v", values, want)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("pre-order elements = %v, should be %v", values, want)
			break
		}
	}
	// text nodes are skipped, so "b" is a leaf
	if tree.LeafCount() != 2 { // title and b
		t.Errorf("leaf count = %d, should be 2", tree.LeafCount())
	}
}

func TestFromHTMLEquality(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	input := `<html><body><ul><li>a</li><li>b</li></ul></body></html>`
	a, err := FromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatal(err.Error())
	}
	b, err := FromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatal(err.Error())
	}
	if !arbor.Equal(a, b) {
		t.Errorf("parsing the same document twice must yield equal trees")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("equal trees must hash identically")
	}
}

func TestElementTreeNil(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if tree := ElementTree(nil); !tree.IsEmpty() {
		t.Errorf("expected the empty tree for nil input")
	}
}

func TestFragmentForest(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	forest, err := FragmentForest(strings.NewReader(`<div><span>a</span></div><p>b</p>`))
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(forest) == 0 {
		t.Fatalf("expected a non-empty forest")
	}
	for _, tree := range forest {
		if tree.IsEmpty() {
			t.Errorf("forest must not contain empty trees")
		}
		t.Logf("tree = %s", tree)
	}
}
