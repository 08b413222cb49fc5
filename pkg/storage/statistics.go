package storage

// Statistics is a point-in-time summary of a graph's shape: the same three
// counts pkg/graph passes to the metrics gauges after a commit.
type Statistics struct {
	NodeCount  int
	EdgeCount  int
	LayerCount int
}

// GetStatistics snapshots the counts that matter for observability - no
// locking needed since Graph is an immutable value.
func (g Graph) GetStatistics() Statistics {
	return Statistics{
		NodeCount:  g.NumNodes(),
		EdgeCount:  g.NumEdges(),
		LayerCount: g.NumLayers(),
	}
}
