package graph

import "github.com/3plates/steadyflow/pkg/storage"

// AddNode queues and commits a single node addition, a batch of one.
func (g Graph) AddNode(node storage.Node) (Graph, error) {
	return g.WithMutations(func(m *storage.Mutator) { m.AddNode(node) })
}

// AddNodes queues and commits several node additions as one batch.
func (g Graph) AddNodes(nodes ...storage.Node) (Graph, error) {
	return g.WithMutations(func(m *storage.Mutator) {
		for _, n := range nodes {
			m.AddNode(n)
		}
	})
}

// RemoveNode queues and commits a single node removal, a batch of one.
// Removing an absent node is a no-op, not an error.
func (g Graph) RemoveNode(id storage.NodeID) (Graph, error) {
	return g.WithMutations(func(m *storage.Mutator) { m.RemoveNode(id) })
}

// RemoveNodes queues and commits several node removals as one batch.
func (g Graph) RemoveNodes(ids ...storage.NodeID) (Graph, error) {
	return g.WithMutations(func(m *storage.Mutator) {
		for _, id := range ids {
			m.RemoveNode(id)
		}
	})
}

// AddEdge queues and commits a single edge addition, a batch of one. The
// edge's id must already be derived via storage.DeriveEdgeID.
func (g Graph) AddEdge(edge storage.Edge) (Graph, error) {
	return g.WithMutations(func(m *storage.Mutator) { m.AddEdge(edge) })
}

// AddEdges queues and commits several edge additions as one batch.
func (g Graph) AddEdges(edges ...storage.Edge) (Graph, error) {
	return g.WithMutations(func(m *storage.Mutator) {
		for _, e := range edges {
			m.AddEdge(e)
		}
	})
}

// RemoveEdge queues and commits a single edge removal, a batch of one.
// Removing an absent edge is a no-op, not an error.
func (g Graph) RemoveEdge(id storage.EdgeID) (Graph, error) {
	return g.WithMutations(func(m *storage.Mutator) { m.RemoveEdge(id) })
}

// RemoveEdges queues and commits several edge removals as one batch.
func (g Graph) RemoveEdges(ids ...storage.EdgeID) (Graph, error) {
	return g.WithMutations(func(m *storage.Mutator) {
		for _, id := range ids {
			m.RemoveEdge(id)
		}
	})
}

// WithMutations hands fn a Mutator to accumulate an arbitrary batch of
// additions and removals, then commits it atomically: either the returned
// Graph reflects every queued change with the layering invariant restored,
// or an error is returned and g is handed back untouched.
func (g Graph) WithMutations(fn func(*storage.Mutator)) (Graph, error) {
	m := storage.NewMutator()
	fn(m)
	return g.commit(m.ChangeLog())
}
