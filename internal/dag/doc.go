// Package dag provides a small weighted directed graph keyed by string IDs.
//
// Edges point from a parent to a child and carry a positive integer weight.
// The graph keeps both directions, so callers can walk children (Successors)
// or parents (Predecessors) without building a transpose themselves.
//
// Traversals use explicit worklists and local visited sets; a Graph holds no
// traversal state between calls, so repeated queries are independent.
package dag
