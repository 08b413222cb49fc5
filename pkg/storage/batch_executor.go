package storage

// ApplyChangeLog is the mutation engine: it applies a ChangeLog to g in the
// fixed order nodes-added, nodes-removed, edges-added,
// edges-removed, and returns the resulting graph plus the dirty set - every
// node whose adjacency or existence changed, which cycle detection and
// layering must revisit. It performs no cycle detection and no layering
// beyond assigning layer 0 to freshly added nodes; both remain the
// caller's responsibility. An edge whose endpoint is absent once the node
// phases have run aborts the whole batch with ErrUnknownEndpoint, leaving
// g's caller free to discard the partially-applied result.
func (g Graph) ApplyChangeLog(cl ChangeLog) (Graph, []NodeID, error) {
	dirty := make(map[NodeID]struct{})

	for _, node := range cl.AddedNodes {
		g = g.applyAddNode(node)
		dirty[node.ID] = struct{}{}
	}

	for _, id := range cl.RemovedNodes {
		var touched []NodeID
		g, touched = g.applyRemoveNode(id)
		delete(dirty, id)
		for _, t := range touched {
			dirty[t] = struct{}{}
		}
	}

	for _, edge := range cl.AddedEdges {
		var err error
		g, err = g.applyAddEdge(edge)
		if err != nil {
			return Graph{}, nil, err
		}
		dirty[edge.SourceID] = struct{}{}
		dirty[edge.TargetID] = struct{}{}
	}

	for _, id := range cl.RemovedEdges {
		edge, existed := g.edgeMap.Get(string(id))
		g = g.applyRemoveEdge(id)
		if existed {
			dirty[edge.SourceID] = struct{}{}
			dirty[edge.TargetID] = struct{}{}
		}
	}

	out := make([]NodeID, 0, len(dirty))
	for id := range dirty {
		if g.nodeMap.Has(string(id)) {
			out = append(out, id)
		}
	}
	return g, out, nil
}
