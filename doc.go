/*
Package arbor provides a generic, immutable tree of values.

# Trees

A tree in this package is a recursively defined value: it is either the
empty tree, or a node carrying exactly one value and an ordered sequence
of child trees. Derived from this split is a classification which is
mutually exclusive and exhaustive:

	empty   the terminal variant, carrying no value at all
	leaf    a node without children
	branch  a node with at least one child

Package arbor implements the algorithms that operate on this structure:
counting of nodes, leaves and branches, containment search, traversal in
pre-, in-, post- and level-order, structural equality and hashing, and
deterministic text renderings for diagnostics and snapshot tests.

Trees are never mutated after construction. Derived trees are built from
new nodes referencing existing children, which makes structural sharing
of subtrees between different parent trees safe. There are no
back-references and no cycles; an unreachable tree is simply collected
by the garbage collector.

Concrete tree flavors—binary trees, rose trees, DOMs—are not separate
types. They are construction policies (see Shape) layered over the
single recursive Tree type, plus bridges like package treehtml which
build trees from external structures.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2023–25, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package arbor

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer traces with key 'arbor'.
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

// TreeError is an error type for the arbor module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrNoValue is returned when the value of the empty tree is requested.
// The empty tree is no node and carries no value.
const ErrNoValue = TreeError("empty tree carries no value")

// ErrUnknownOrder is returned for a traversal order outside the closed
// set of pre-, in-, post- and level-order.
const ErrUnknownOrder = TreeError("unknown traversal order")

// ErrTreeCompleted signals that a builder has already completed a tree and
// it's illegal to further add children.
const ErrTreeCompleted = TreeError("forbidden to add children; tree has been completed")

// ErrShapeViolation signals that a node would exceed the maximum degree
// of its construction shape.
const ErrShapeViolation = TreeError("node exceeds maximum degree of shape")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
