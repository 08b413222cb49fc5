package storage

import "sort"

// IsEmpty reports whether the graph holds no nodes.
func (g Graph) IsEmpty() bool {
	return g.nodeMap.Len() == 0
}

// NumNodes returns the number of nodes in the graph.
func (g Graph) NumNodes() int {
	return g.nodeMap.Len()
}

// NumEdges returns the number of edges in the graph.
func (g Graph) NumEdges() int {
	return g.edgeMap.Len()
}

// HasNode reports whether id is present.
func (g Graph) HasNode(id NodeID) bool {
	return g.nodeMap.Has(string(id))
}

// HasEdge reports whether id is present.
func (g Graph) HasEdge(id EdgeID) bool {
	return g.edgeMap.Has(string(id))
}

// GetNode retrieves a node by id.
func (g Graph) GetNode(id NodeID) (Node, bool) {
	return g.nodeMap.Get(string(id))
}

// GetEdge retrieves an edge by id.
func (g Graph) GetEdge(id EdgeID) (Edge, bool) {
	return g.edgeMap.Get(string(id))
}

// NodeIDs returns every node id, lexicographically sorted.
func (g Graph) NodeIDs() []NodeID {
	keys := g.nodeMap.Keys()
	ids := make([]NodeID, len(keys))
	for i, k := range keys {
		ids[i] = NodeID(k)
	}
	return ids
}

// EdgeIDs returns every edge id, lexicographically sorted.
func (g Graph) EdgeIDs() []EdgeID {
	keys := g.edgeMap.Keys()
	ids := make([]EdgeID, len(keys))
	for i, k := range keys {
		ids[i] = EdgeID(k)
	}
	return ids
}

// PredNodes returns the distinct source nodes of id's incoming edges,
// sorted.
func (g Graph) PredNodes(id NodeID) []NodeID {
	seen := make(map[NodeID]struct{})
	g.adjacency.PredEdges(id).Range(func(eid EdgeID) bool {
		if e, ok := g.edgeMap.Get(string(eid)); ok {
			seen[e.SourceID] = struct{}{}
		}
		return true
	})
	return sortedNodeIDs(seen)
}

// SuccNodes returns the distinct target nodes of id's outgoing edges,
// sorted.
func (g Graph) SuccNodes(id NodeID) []NodeID {
	seen := make(map[NodeID]struct{})
	g.adjacency.SuccEdges(id).Range(func(eid EdgeID) bool {
		if e, ok := g.edgeMap.Get(string(eid)); ok {
			seen[e.TargetID] = struct{}{}
		}
		return true
	})
	return sortedNodeIDs(seen)
}

// PredEdges returns the incoming edge ids of id, sorted.
func (g Graph) PredEdges(id NodeID) []EdgeID {
	return sortedEdgeIDs(g.adjacency.PredEdges(id).Items())
}

// SuccEdges returns the outgoing edge ids of id, sorted.
func (g Graph) SuccEdges(id NodeID) []EdgeID {
	return sortedEdgeIDs(g.adjacency.SuccEdges(id).Items())
}

// LayerOf returns the layer id a node is assigned to.
func (g Graph) LayerOf(id NodeID) (LayerID, bool) {
	return g.layers.LayerOf(id)
}

// IndexOf returns the positional layer index a node is assigned to.
func (g Graph) IndexOf(id NodeID) (int, bool) {
	return g.layers.IndexOf(id)
}

// NumLayers returns the number of layers currently in use.
func (g Graph) NumLayers() int {
	return g.layers.NumLayers()
}

// LayerNodes returns the node ids assigned to the layer at positional
// index, sorted, or nil if index is out of range.
func (g Graph) LayerNodes(index int) []NodeID {
	list := g.layers.LayerList()
	if index < 0 || index >= len(list) {
		return nil
	}
	layer, ok := g.layers.Layer(list[index])
	if !ok {
		return nil
	}
	seen := make(map[NodeID]struct{}, layer.Nodes.Len())
	layer.Nodes.Range(func(id NodeID) bool {
		seen[id] = struct{}{}
		return true
	})
	return sortedNodeIDs(seen)
}

func sortedNodeIDs(set map[NodeID]struct{}) []NodeID {
	out := make([]NodeID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedEdgeIDs(ids []EdgeID) []EdgeID {
	out := make([]EdgeID, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
