package treehtml

import (
	"io"

	"github.com/npillmayer/arbor"
	"golang.org/x/net/html"
)

// TreeName is the display label of trees built by this package.
const TreeName = "DOM"

// FromHTML parses an HTML document and returns its element structure as
// a tree of element names. It resembles walking
//
//	document.documentElement
//
// in JavaScript: the root of the resulting tree is the document's root
// element (usually "html"), with one child node per descendent element.
func FromHTML(input io.Reader) (arbor.Tree[string], error) {
	doc, err := html.Parse(input)
	if err != nil {
		return arbor.Tree[string]{}, err
	}
	return ElementTree(doc), nil
}

// FragmentForest parses an HTML fragment and returns the element trees
// of its top-level elements, in document order.
func FragmentForest(input io.Reader) ([]arbor.Tree[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var forest []arbor.Tree[string]
	for _, n := range nodes {
		t := ElementTree(n)
		if t.IsEmpty() {
			continue
		}
		forest = append(forest, t)
	}
	return forest, nil
}

// ElementTree converts the element structure beneath an HTML node into a
// tree of element names. Non-element nodes contribute no tree node; for
// a document node the tree of the document's root element is returned.
// A nil or element-free input yields the empty tree.
func ElementTree(n *html.Node) arbor.Tree[string] {
	if n == nil {
		return arbor.Tree[string]{}.Named(TreeName)
	}
	if n.Type == html.DocumentNode {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				return ElementTree(c)
			}
		}
		return arbor.Tree[string]{}.Named(TreeName)
	}
	if n.Type != html.ElementNode {
		return arbor.Tree[string]{}.Named(TreeName)
	}
	tracer().Debugf("<%s>", n.Data)
	b := arbor.NewBuilder(n.Data).Named(TreeName)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		b.Append(ElementTree(c))
	}
	return b.Tree()
}
