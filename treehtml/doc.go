/*
Package treehtml builds arbor trees from HTML documents.

The element structure of a parsed HTML document is itself an immutable
tree, which makes it a convenient source of realistic test shapes and a
bridge to DOM-style processing. Text nodes, comments and doctypes are
not part of the element structure and are skipped.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package treehtml

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}
