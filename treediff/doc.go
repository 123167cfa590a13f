/*
Package treediff reports differences between two trees.

Trees render deterministically (see arbor.Tree.IndentedString), which
makes a text diff of two renderings a compact, human-readable delta.
This is intended for diagnostics and snapshot tests: when a tree-valued
assertion fails, the diff shows where the structures diverge.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package treediff
