package dag

import "fmt"

// Ancestors returns the IDs of every node from which the given node is
// reachable, excluding the node itself unless it lies on a cycle. The
// result is in discovery order.
func (g *Graph) Ancestors(id string) ([]string, error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}

	visited := make(map[string]bool)
	var found []string
	stack := []string{id}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		parents, err := g.Predecessors(current)
		if err != nil {
			return nil, err
		}
		for _, p := range parents {
			if visited[p] {
				continue
			}
			visited[p] = true
			found = append(found, p)
			stack = append(stack, p)
		}
	}
	return found, nil
}

// WeightedDescendants returns the total number of items below the given
// node when every edge weight is a multiplicity: each child contributes
// weight x (1 + its own descendants). The root is not counted.
//
// The part of the graph reachable from id must be acyclic; a cycle there
// yields an error wrapping ErrCycle.
func (g *Graph) WeightedDescendants(id string) (int, error) {
	if _, ok := g.nodes[id]; !ok {
		return 0, fmt.Errorf("node not found: %s", id)
	}
	if err := g.DetectCyclesFrom(id); err != nil {
		return 0, err
	}

	type item struct {
		id    string
		times int
	}

	total := 0
	stack := []item{{id: id, times: 1}}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		edges, err := g.Successors(current.id)
		if err != nil {
			return 0, err
		}
		for _, e := range edges {
			n := current.times * e.Weight
			total += n
			stack = append(stack, item{id: e.To, times: n})
		}
	}
	return total, nil
}
