package storage

// applyAddEdge inserts edge into g after validating both endpoints already
// exist in nodeMap. Returns ErrUnknownEndpoint (wrapped) if either does not.
func (g Graph) applyAddEdge(edge Edge) (Graph, error) {
	if !g.nodeMap.Has(string(edge.SourceID)) {
		return g, UnknownEndpointError(edge.ID, edge.SourceID)
	}
	if !g.nodeMap.Has(string(edge.TargetID)) {
		return g, UnknownEndpointError(edge.ID, edge.TargetID)
	}

	g.edgeMap = g.edgeMap.Insert(string(edge.ID), edge)
	g.adjacency = g.adjacency.addEdge(edge.ID, edge.SourceID, edge.TargetID)
	return g, nil
}

// applyRemoveEdge deletes id from g, a no-op if absent.
func (g Graph) applyRemoveEdge(id EdgeID) Graph {
	edge, ok := g.edgeMap.Get(string(id))
	if !ok {
		return g
	}
	g.edgeMap = g.edgeMap.Delete(string(id))
	g.adjacency = g.adjacency.removeEdge(id, edge.SourceID, edge.TargetID)
	return g
}
