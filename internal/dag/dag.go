package dag

import (
	"errors"
	"fmt"
	"sort"
)

// ErrCycle is returned when a traversal requires an acyclic graph and a
// cycle is present.
var ErrCycle = errors.New("cycle detected")

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a new node with the given ID to the graph. If a node with
// the same ID already exists, the function does nothing.
func (g *Graph) AddNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}

	g.nodes[id] = &node{
		id:       id,
		children: make(map[string]int),
		parents:  make(map[string]struct{}),
	}
	g.order = append(g.order, id)
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Nodes returns all node IDs in insertion order.
func (g *Graph) Nodes() []string {
	return append([]string(nil), g.order...)
}

// AddEdge creates a directed edge from the `fromID` node to the `toID` node
// with the given weight. Adding the same edge twice sums the weights. An error
// is returned if either node does not exist, if the weight is not positive,
// or if the edge would create a self-reference.
func (g *Graph) AddEdge(fromID, toID string, weight int) error {
	if fromID == toID {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", fromID, fromID)
	}
	if weight <= 0 {
		return fmt.Errorf("edge %s -> %s has non-positive weight %d", fromID, toID, weight)
	}

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromID)
	}

	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toID)
	}

	fromNode.children[toID] += weight
	toNode.parents[fromID] = struct{}{}

	return nil
}

// Successors returns the outgoing edges of the given node, sorted by target ID.
func (g *Graph) Successors(id string) ([]Edge, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}

	edges := make([]Edge, 0, len(n.children))
	for to, w := range n.children {
		edges = append(edges, Edge{To: to, Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })
	return edges, nil
}

// Predecessors returns the IDs of nodes with an edge into the given node,
// sorted.
func (g *Graph) Predecessors(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}

	parents := make([]string, 0, len(n.parents))
	for p := range n.parents {
		parents = append(parents, p)
	}
	sort.Strings(parents)
	return parents, nil
}

// DetectCycles checks the graph for any cycles. It returns an error wrapping
// ErrCycle if a cycle is found, naming the first node seen twice on the
// current path.
func (g *Graph) DetectCycles() error {
	c := g.newCycleFinder()
	for _, id := range g.order {
		if err := c.visit(g.nodes[id]); err != nil {
			return err
		}
	}
	return nil
}

// DetectCyclesFrom is like DetectCycles but only considers the nodes
// reachable from id, so cycles elsewhere in the graph are ignored.
func (g *Graph) DetectCyclesFrom(id string) error {
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("node not found: %s", id)
	}
	return g.newCycleFinder().visit(n)
}

// cycleFinder is a DFS with the usual marks.
// permanent: fully visited and not part of a cycle.
// temporary: on the current DFS path.
type cycleFinder struct {
	g         *Graph
	permanent map[string]bool
	temporary map[string]bool
}

func (g *Graph) newCycleFinder() *cycleFinder {
	return &cycleFinder{
		g:         g,
		permanent: make(map[string]bool),
		temporary: make(map[string]bool),
	}
}

func (c *cycleFinder) visit(n *node) error {
	if c.permanent[n.id] {
		return nil
	}
	if c.temporary[n.id] {
		return fmt.Errorf("%w involving node '%s'", ErrCycle, n.id)
	}

	c.temporary[n.id] = true

	for childID := range n.children {
		if err := c.visit(c.g.nodes[childID]); err != nil {
			return err
		}
	}

	delete(c.temporary, n.id)
	c.permanent[n.id] = true

	return nil
}
