package graph

import (
	"testing"

	"github.com/3plates/steadyflow/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func edge(src, dst string) storage.Edge {
	return storage.Edge{
		ID:       storage.DeriveEdgeID(storage.NodeID(src), storage.NodeID(dst), "", ""),
		SourceID: storage.NodeID(src),
		TargetID: storage.NodeID(dst),
	}
}

func TestNew_Empty(t *testing.T) {
	g, err := New()
	require.NoError(t, err)
	assert.True(t, g.IsEmpty())
	assert.Equal(t, 0, g.NumNodes())
	assert.Equal(t, 0, g.NumEdges())
	_, ok := g.Prior()
	assert.False(t, ok)
}

func TestNew_SeededWithNodesAndEdges(t *testing.T) {
	g, err := New(
		WithSeedNodes(storage.Node{ID: "a"}, storage.Node{ID: "b"}),
		WithSeedEdges(edge("a", "b")),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumNodes())
	assert.Equal(t, 1, g.NumEdges())
	idxA, _ := g.IndexOf("a")
	idxB, _ := g.IndexOf("b")
	assert.Less(t, idxA, idxB)
}

func TestNew_SeedCycleRejected(t *testing.T) {
	_, err := New(
		WithSeedNodes(storage.Node{ID: "a"}, storage.Node{ID: "b"}),
		WithSeedEdges(edge("a", "b"), edge("b", "a")),
	)
	require.Error(t, err)
	assert.True(t, storage.IsCycleDetected(err))
}

func TestAddNode_AddEdge_RoundTrip(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	g, err = g.AddNodes(storage.Node{ID: "a", Data: 1}, storage.Node{ID: "b", Data: 2})
	require.NoError(t, err)

	g, err = g.AddEdge(edge("a", "b"))
	require.NoError(t, err)

	assert.True(t, g.HasEdge(edge("a", "b").ID))
	assert.Equal(t, []storage.NodeID{"b"}, g.SuccNodes("a"))
	assert.Equal(t, []storage.NodeID{"a"}, g.PredNodes("b"))

	node, ok := g.GetNode("a")
	require.True(t, ok)
	assert.Equal(t, 1, node.Data)
}

func TestPrior_ChainsAcrossCommits(t *testing.T) {
	g0, err := New()
	require.NoError(t, err)

	g1, err := g0.AddNode(storage.Node{ID: "a"})
	require.NoError(t, err)

	g2, err := g1.AddNode(storage.Node{ID: "b"})
	require.NoError(t, err)

	prior1, ok := g2.Prior()
	require.True(t, ok)
	assert.Equal(t, 1, prior1.NumNodes())

	prior0, ok := prior1.Prior()
	require.True(t, ok)
	assert.True(t, prior0.IsEmpty())

	_, ok = prior0.Prior()
	assert.False(t, ok)
}

func TestRemoveNode_IsNoOpOnAbsentID(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	g2, err := g.RemoveNode("ghost")
	require.NoError(t, err)
	assert.True(t, g2.IsEmpty())
}

func TestCommit_CycleLeavesOriginalUntouched(t *testing.T) {
	g, err := New(WithSeedNodes(storage.Node{ID: "a"}, storage.Node{ID: "b"}), WithSeedEdges(edge("a", "b")))
	require.NoError(t, err)
	before := g

	_, err = g.AddEdge(edge("b", "a"))
	require.Error(t, err)
	assert.True(t, storage.IsCycleDetected(err))

	assert.Equal(t, before.NumNodes(), g.NumNodes())
	assert.Equal(t, before.NumEdges(), g.NumEdges())
}

func TestLayers_ReflectsLayerNodes(t *testing.T) {
	g, err := New(
		WithSeedNodes(storage.Node{ID: "a"}, storage.Node{ID: "b"}, storage.Node{ID: "c"}),
		WithSeedEdges(edge("a", "b"), edge("b", "c")),
	)
	require.NoError(t, err)

	layers := g.Layers()
	require.Len(t, layers, 3)
	assert.Equal(t, []storage.NodeID{"a"}, layers[0])
	assert.Equal(t, []storage.NodeID{"b"}, layers[1])
	assert.Equal(t, []storage.NodeID{"c"}, layers[2])
}

func TestCommit_ReAddedNodeWithNewCyclicEdgeIsStillRejected(t *testing.T) {
	// Incremental mode only kicks in at >= 20 nodes (DefaultThresholds), so
	// pad the graph with unrelated filler nodes to force that path.
	seed := []storage.Node{{ID: "p"}, {ID: "q"}, {ID: "r"}}
	for i := 0; i < 20; i++ {
		seed = append(seed, storage.Node{ID: storage.NodeID("filler" + string(rune('a'+i)))})
	}
	g, err := New(WithSeedNodes(seed...), WithSeedEdges(edge("p", "q"), edge("q", "r")))
	require.NoError(t, err)

	idxR, ok := g.IndexOf("r")
	require.True(t, ok)
	require.Equal(t, 2, idxR)

	_, err = g.WithMutations(func(m *storage.Mutator) {
		m.AddNode(storage.Node{ID: "r"})
		m.AddEdge(edge("r", "q"))
	})
	require.Error(t, err, "re-adding r then closing r->q->r must still be rejected as a cycle")
	assert.True(t, storage.IsCycleDetected(err))
}

func TestNodesAndEdges_ReturnAllValues(t *testing.T) {
	g, err := New(WithSeedNodes(storage.Node{ID: "a"}, storage.Node{ID: "b"}), WithSeedEdges(edge("a", "b")))
	require.NoError(t, err)

	nodes := g.Nodes()
	require.Len(t, nodes, 2)
	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, storage.NodeID("a"), edges[0].SourceID)
}
