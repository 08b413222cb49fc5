package algorithms

import (
	"testing"

	"github.com/3plates/steadyflow/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withLayers places each id in placements at its mapped index, simulating the
// result of a layering pass the tests in this file don't otherwise run.
func withLayers(g storage.Graph, placements map[string]int) storage.Graph {
	li := g.Layers()
	for id, idx := range placements {
		li.MoveNode(storage.NodeID(id), idx)
	}
	return g.WithLayers(li)
}

func TestIsConnected_EmptyGraph(t *testing.T) {
	g := storage.NewGraph()
	assert.True(t, IsConnected(g))
}

func TestIsConnected_SingleNode(t *testing.T) {
	g := buildGraph(t, []string{"a"}, nil)
	assert.True(t, IsConnected(g))
}

func TestIsConnected_ConnectedChain(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	assert.True(t, IsConnected(g))
}

func TestIsConnected_DisconnectedComponents(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c", "d"}, [][2]string{{"a", "b"}, {"c", "d"}})
	assert.False(t, IsConnected(g))
}

func TestIsTree_EmptyGraphIsNotATree(t *testing.T) {
	g := storage.NewGraph()
	assert.False(t, IsTree(g))
}

func TestIsTree_SingleNode(t *testing.T) {
	g := buildGraph(t, []string{"a"}, nil)
	assert.True(t, IsTree(g))
}

func TestIsTree_ValidTree(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c", "d"}, [][2]string{
		{"a", "b"}, {"a", "c"}, {"b", "d"},
	})
	assert.True(t, IsTree(g))
}

func TestIsTree_RejectsExtraEdge(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c"}, [][2]string{
		{"a", "b"}, {"a", "c"}, {"b", "c"},
	})
	assert.False(t, IsTree(g))
}

func TestIsTree_RejectsMultipleRoots(t *testing.T) {
	// a->b and c->b: 3 nodes, 2 edges (n-1), connected, but two roots (a, c).
	g := buildGraph(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"c", "b"}})
	require.Equal(t, g.NumNodes()-1, g.NumEdges())
	assert.False(t, IsTree(g))
}

func TestRootNodes_AndSinkNodes(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	assert.Equal(t, []storage.NodeID{"a"}, RootNodes(g))
	assert.Equal(t, []storage.NodeID{"c"}, SinkNodes(g))
}

func TestRootNodes_AllNodesWithNoEdges(t *testing.T) {
	g := buildGraph(t, []string{"a", "b"}, nil)
	assert.ElementsMatch(t, []storage.NodeID{"a", "b"}, RootNodes(g))
	assert.ElementsMatch(t, []storage.NodeID{"a", "b"}, SinkNodes(g))
}

func TestLongestPathLength_LinearChain(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	g = withLayers(g, map[string]int{"a": 0, "b": 1, "c": 2})
	assert.Equal(t, 2, LongestPathLength(g))
}

func TestLongestPathLength_Diamond(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c", "d"}, [][2]string{
		{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"},
	})
	g = withLayers(g, map[string]int{"a": 0, "b": 1, "c": 1, "d": 2})
	assert.Equal(t, 2, LongestPathLength(g))
}

func TestLongestPathLength_NoEdges(t *testing.T) {
	g := buildGraph(t, []string{"a", "b"}, nil)
	assert.Equal(t, 0, LongestPathLength(g))
}
