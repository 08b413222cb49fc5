package storage

// applyAddNode inserts node into g and initializes its adjacency sets. A
// genuinely new id starts at layer 0, the root layer, pending a later
// layering pass once its edges are known. Re-adding an id already present
// overwrites its value (last write wins, matching the edges-add policy) but
// leaves its current layer alone: ensureNode is idempotent and its existing
// edges are untouched, so resetting it to 0 would leave the layering
// invariant stale with respect to those edges until the next layering pass
// re-examines it - and cycle detection relies on the current layering being
// consistent with every already-existing edge to safely skip its BFS check.
func (g Graph) applyAddNode(node Node) Graph {
	isNew := !g.nodeMap.Has(string(node.ID))
	g.nodeMap = g.nodeMap.Insert(string(node.ID), node)
	g.adjacency = g.adjacency.ensureNode(node.ID)
	if isNew {
		g.layers.MoveNode(node.ID, 0)
	}
	return g
}

// applyRemoveNode deletes id along with every edge touching it, and reports
// the neighbor ids whose adjacency changed as a result. Removing an id not
// present in g is a no-op.
func (g Graph) applyRemoveNode(id NodeID) (Graph, []NodeID) {
	if !g.nodeMap.Has(string(id)) {
		return g, nil
	}

	var touched []NodeID
	for _, eid := range g.adjacency.SuccEdges(id).Items() {
		if e, ok := g.edgeMap.Get(string(eid)); ok {
			g.edgeMap = g.edgeMap.Delete(string(eid))
			g.adjacency = g.adjacency.removeEdge(eid, e.SourceID, e.TargetID)
			touched = append(touched, e.TargetID)
		}
	}
	for _, eid := range g.adjacency.PredEdges(id).Items() {
		if e, ok := g.edgeMap.Get(string(eid)); ok {
			g.edgeMap = g.edgeMap.Delete(string(eid))
			g.adjacency = g.adjacency.removeEdge(eid, e.SourceID, e.TargetID)
			touched = append(touched, e.SourceID)
		}
	}

	g.nodeMap = g.nodeMap.Delete(string(id))
	g.adjacency = g.adjacency.dropNode(id)
	g.layers.RemoveNode(id)
	return g, touched
}
