package storage

import "github.com/3plates/steadyflow/pkg/pmap"

// Graph is the low-level persistent engine: nodes, edges, their adjacency
// index and layer index, all structurally shared with Prior. It exposes
// queries and the mutation engine (ApplyChangeLog) only - cycle detection
// and re-layering live above this package, since both need to call back
// into this package's types.
type Graph struct {
	nodeMap pmap.Map[Node]
	edgeMap pmap.Map[Edge]

	adjacency AdjacencyIndex
	layers    LayerIndex

	// Prior points at the graph version this one was committed from, or
	// nil for the initial empty graph. Set by the caller on the candidate
	// before ApplyChangeLog runs; ApplyChangeLog only carries it over.
	Prior *Graph
}

// NewGraph returns the empty graph - no nodes, no edges, no layers.
func NewGraph() Graph {
	return Graph{
		nodeMap:   pmap.New[Node](),
		edgeMap:   pmap.New[Edge](),
		adjacency: NewAdjacencyIndex(),
		layers:    NewLayerIndex(),
	}
}

// Layers exposes the layer index for the layering algorithm to read and,
// via WithLayers, write back after a pass.
func (g Graph) Layers() LayerIndex {
	return g.layers
}

// WithLayers returns a copy of g with its layer index replaced.
func (g Graph) WithLayers(li LayerIndex) Graph {
	g.layers = li
	return g
}

// Adjacency exposes the pred/succ edge-id index for read-only traversal by
// the cycle detector and layering algorithm.
func (g Graph) Adjacency() AdjacencyIndex {
	return g.adjacency
}
