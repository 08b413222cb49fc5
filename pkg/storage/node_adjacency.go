package storage

import "github.com/3plates/steadyflow/pkg/pmap"

// AdjacencyIndex is the pred/succ edge-id index over a graph: predMap and
// succMap, both NodeId -> set<EdgeId>. predMap[v] holds the ids of every
// edge whose TargetID is v; succMap[u] mirrors it for SourceID.
type AdjacencyIndex struct {
	predMap pmap.Map[pmap.Set[EdgeID]]
	succMap pmap.Map[pmap.Set[EdgeID]]
}

// NewAdjacencyIndex returns an empty AdjacencyIndex.
func NewAdjacencyIndex() AdjacencyIndex {
	return AdjacencyIndex{
		predMap: pmap.New[pmap.Set[EdgeID]](),
		succMap: pmap.New[pmap.Set[EdgeID]](),
	}
}

// PredEdges returns the incoming edge ids of a node, empty if the node is
// absent or has no predecessors.
func (ai AdjacencyIndex) PredEdges(id NodeID) pmap.Set[EdgeID] {
	set, ok := ai.predMap.Get(string(id))
	if !ok {
		return pmap.NewSet[EdgeID]()
	}
	return set
}

// SuccEdges returns the outgoing edge ids of a node, empty if the node is
// absent or has no successors.
func (ai AdjacencyIndex) SuccEdges(id NodeID) pmap.Set[EdgeID] {
	set, ok := ai.succMap.Get(string(id))
	if !ok {
		return pmap.NewSet[EdgeID]()
	}
	return set
}

// ensureNode installs empty pred/succ sets for a newly added node.
func (ai AdjacencyIndex) ensureNode(id NodeID) AdjacencyIndex {
	if !ai.predMap.Has(string(id)) {
		ai.predMap = ai.predMap.Insert(string(id), pmap.NewSet[EdgeID]())
	}
	if !ai.succMap.Has(string(id)) {
		ai.succMap = ai.succMap.Insert(string(id), pmap.NewSet[EdgeID]())
	}
	return ai
}

// dropNode removes a node's pred/succ sets entirely.
func (ai AdjacencyIndex) dropNode(id NodeID) AdjacencyIndex {
	ai.predMap = ai.predMap.Delete(string(id))
	ai.succMap = ai.succMap.Delete(string(id))
	return ai
}

// addEdge appends edgeID to succMap[sourceID] and predMap[targetID].
func (ai AdjacencyIndex) addEdge(edgeID EdgeID, sourceID, targetID NodeID) AdjacencyIndex {
	ai.succMap = ai.succMap.Insert(string(sourceID), ai.SuccEdges(sourceID).Add(edgeID))
	ai.predMap = ai.predMap.Insert(string(targetID), ai.PredEdges(targetID).Add(edgeID))
	return ai
}

// removeEdge strips edgeID from succMap[sourceID] and predMap[targetID].
// Removing an edge id that is not present is a no-op.
func (ai AdjacencyIndex) removeEdge(edgeID EdgeID, sourceID, targetID NodeID) AdjacencyIndex {
	if ai.succMap.Has(string(sourceID)) {
		ai.succMap = ai.succMap.Insert(string(sourceID), ai.SuccEdges(sourceID).Remove(edgeID))
	}
	if ai.predMap.Has(string(targetID)) {
		ai.predMap = ai.predMap.Insert(string(targetID), ai.PredEdges(targetID).Remove(edgeID))
	}
	return ai
}
