package storage

import (
	"fmt"

	"github.com/3plates/steadyflow/pkg/pmap"
)

// NodeID identifies a node, unique within a Graph.
type NodeID string

// LayerID identifies a layer. Stable across compactions - unlike Index,
// which is positional and renumbered as layers are created or emptied.
type LayerID string

// EdgeID identifies an edge. Callers derive it deterministically from its
// endpoints via DeriveEdgeID; the engine stores whatever Edge.ID it is given
// and does not re-derive or check it.
type EdgeID string

// Node is a vertex in the graph. Identity is ID; Data is an opaque payload
// owned entirely by the caller.
type Node struct {
	ID   NodeID
	Data any
}

// Edge is a directed relationship between two nodes, optionally qualified by
// named ports on either endpoint (for callers modelling multi-port nodes).
type Edge struct {
	ID         EdgeID
	SourceID   NodeID
	TargetID   NodeID
	SourcePort string
	TargetPort string
	Data       any
}

// DeriveEdgeID composes the deterministic, collision-free (given unique port
// names) edge id "{sourceId[.sourcePort]}-{targetId[.targetPort]}".
func DeriveEdgeID(sourceID, targetID NodeID, sourcePort, targetPort string) EdgeID {
	src := string(sourceID)
	if sourcePort != "" {
		src = fmt.Sprintf("%s.%s", src, sourcePort)
	}
	dst := string(targetID)
	if targetPort != "" {
		dst = fmt.Sprintf("%s.%s", dst, targetPort)
	}
	return EdgeID(fmt.Sprintf("%s-%s", src, dst))
}

// Layer groups the nodes currently assigned to one topological rank. Index
// is positional (renumbered on compaction); ID is stable across the layer's
// lifetime.
type Layer struct {
	ID    LayerID
	Index int
	Nodes pmap.Set[NodeID]
}
