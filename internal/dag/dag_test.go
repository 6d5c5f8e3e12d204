package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New()
	require.NotNil(t, g)
	assert.NotNil(t, g.nodes)
	assert.Empty(t, g.nodes)
	assert.Zero(t, g.Len())
}

func TestAddNode(t *testing.T) {
	g := New()

	g.AddNode("a")
	assert.Len(t, g.nodes, 1)
	nodeA, ok := g.nodes["a"]
	require.True(t, ok)
	assert.Equal(t, "a", nodeA.id)
	assert.NotNil(t, nodeA.children)
	assert.NotNil(t, nodeA.parents)

	g.AddNode("a") // Test idempotency
	assert.Len(t, g.nodes, 1)

	g.AddNode("b")
	assert.Equal(t, []string{"a", "b"}, g.Nodes())
	assert.True(t, g.HasNode("b"))
	assert.False(t, g.HasNode("c"))
}

func TestAddEdge(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")

		require.NoError(t, g.AddEdge("a", "b", 2))
		require.NoError(t, g.AddEdge("a", "b", 3)) // weights accumulate

		assert.Equal(t, 5, g.nodes["a"].children["b"])
		assert.Contains(t, g.nodes["b"].parents, "a")
	})

	t.Run("error cases", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")

		err := g.AddEdge("dne", "a", 1)
		assert.ErrorContains(t, err, "source node not found")

		err = g.AddEdge("a", "dne", 1)
		assert.ErrorContains(t, err, "destination node not found")

		err = g.AddEdge("a", "a", 1)
		assert.ErrorContains(t, err, "self-referential edge")

		err = g.AddEdge("a", "b", 0)
		assert.ErrorContains(t, err, "non-positive weight")
	})
}

func TestSuccessorsAndPredecessors(t *testing.T) {
	g := New()
	for _, id := range []string{"root", "z", "m", "other"} {
		g.AddNode(id)
	}
	require.NoError(t, g.AddEdge("root", "z", 1))
	require.NoError(t, g.AddEdge("root", "m", 4))
	require.NoError(t, g.AddEdge("other", "m", 2))

	edges, err := g.Successors("root")
	require.NoError(t, err)
	assert.Equal(t, []Edge{{To: "m", Weight: 4}, {To: "z", Weight: 1}}, edges)

	parents, err := g.Predecessors("m")
	require.NoError(t, err)
	assert.Equal(t, []string{"other", "root"}, parents)

	_, err = g.Successors("missing")
	assert.ErrorContains(t, err, "node not found")
	_, err = g.Predecessors("missing")
	assert.ErrorContains(t, err, "node not found")
}

func TestDetectCycles(t *testing.T) {
	t.Run("empty graph has no cycles", func(t *testing.T) {
		g := New()
		assert.NoError(t, g.DetectCycles())
	})

	t.Run("valid dag has no cycles", func(t *testing.T) {
		g := New()
		for _, id := range []string{"a", "b", "c", "d"} {
			g.AddNode(id)
		}
		require.NoError(t, g.AddEdge("a", "b", 1))
		require.NoError(t, g.AddEdge("b", "c", 1))
		require.NoError(t, g.AddEdge("a", "c", 1)) // Transitive edge
		require.NoError(t, g.AddEdge("c", "d", 1))
		assert.NoError(t, g.DetectCycles())
	})

	t.Run("longer cycle is detected", func(t *testing.T) {
		g := New()
		for _, id := range []string{"a", "b", "c"} {
			g.AddNode(id)
		}
		require.NoError(t, g.AddEdge("a", "b", 1))
		require.NoError(t, g.AddEdge("b", "c", 1))
		require.NoError(t, g.AddEdge("c", "a", 1))
		err := g.DetectCycles()
		assert.ErrorIs(t, err, ErrCycle)
	})
}
