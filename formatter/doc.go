/*
Package formatter outputs trees to consoles.

The formatter renders a tree one node per line, with box-drawing guide
lines showing the structure, optional colorization per node class, and
node labels truncated to the terminal width without splitting grapheme
clusters.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}
