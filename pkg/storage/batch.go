package storage

// Mutator is a pure accumulator for a pending batch of mutations - it never
// touches a Graph and never validates; unknown endpoints and duplicate ids
// are resolved later by ApplyChangeLog.
type Mutator struct {
	log ChangeLog
}

// NewMutator returns an empty Mutator.
func NewMutator() *Mutator {
	return &Mutator{}
}

// AddNode queues a node for addition. Re-adding an id already queued (or
// already present) is allowed - last writer wins at apply time.
func (m *Mutator) AddNode(node Node) *Mutator {
	m.log.AddedNodes = append(m.log.AddedNodes, node)
	return m
}

// RemoveNode queues a node for removal by id.
func (m *Mutator) RemoveNode(id NodeID) *Mutator {
	m.log.RemovedNodes = append(m.log.RemovedNodes, id)
	return m
}

// AddEdge queues an edge for addition. The edge id is expected to already be
// derived via DeriveEdgeID.
func (m *Mutator) AddEdge(edge Edge) *Mutator {
	m.log.AddedEdges = append(m.log.AddedEdges, edge)
	return m
}

// RemoveEdge queues an edge for removal by id.
func (m *Mutator) RemoveEdge(id EdgeID) *Mutator {
	m.log.RemovedEdges = append(m.log.RemovedEdges, id)
	return m
}

// ChangeLog returns the accumulated log.
func (m *Mutator) ChangeLog() ChangeLog {
	return m.log
}
