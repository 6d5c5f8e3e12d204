package dag

// Graph is a collection of nodes and weighted edges between them.
type Graph struct {
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
	// order records node IDs in insertion order for deterministic iteration.
	order []string
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using string IDs),
// not by direct struct manipulation.
type node struct {
	// id is the unique identifier for the node.
	id string
	// children maps each successor ID to the accumulated edge weight.
	children map[string]int
	// parents holds the set of predecessor IDs.
	parents map[string]struct{}
}

// Edge is an outgoing edge as seen from its parent.
type Edge struct {
	To     string
	Weight int
}
