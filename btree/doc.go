/*
Package btree provides a persistent B+ sum-tree used as the ordered knot
store of splines.

The tree stores items in sequence order. Every item reports a summary, and
summaries are aggregated bottom-up through a monoid, so each inner node knows
the combined summary of its subtree. Clients navigate the tree along a
Dimension (see Cursor), which turns the summaries into a seekable coordinate.
For splines the summary carries the position span of the knots below a node,
which makes "find the first knot at or after position x" a single descent.

Updates are persistent: InsertAt, SetAt, DeleteAt and DeleteRange return a new
tree and share every node not on the modified path with the receiver. An
existing *Tree is never changed by an update, so a snapshot taken by a reader
stays valid while a writer keeps editing.

Occupancy rules:
  - the root is a leaf or an inner node with at least two children,
  - every other leaf holds Base..MaxLeafItems items,
  - every other inner node holds Base..MaxChildren children,
  - all leaves are at the same depth.

Check verifies these rules and is meant for tests.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'splines'
func tracer() tracing.Trace {
	return tracing.Select("splines")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
