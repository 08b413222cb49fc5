package storage

// ChangeLog accumulates the four kinds of pending mutation: nodes to add,
// nodes to remove, edges to add, edges to remove. It is built up by a
// Mutator and consumed by ApplyChangeLog in commit order - nodes added,
// nodes removed, edges added, edges removed.
type ChangeLog struct {
	AddedNodes   []Node
	RemovedNodes []NodeID
	AddedEdges   []Edge
	RemovedEdges []EdgeID
}

// IsEmpty reports whether the change log has no pending operations.
func (cl ChangeLog) IsEmpty() bool {
	return len(cl.AddedNodes) == 0 && len(cl.RemovedNodes) == 0 &&
		len(cl.AddedEdges) == 0 && len(cl.RemovedEdges) == 0
}
