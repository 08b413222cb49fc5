package algorithms

import "github.com/3plates/steadyflow/pkg/storage"

// Thresholds governing which cycle detection strategy runs, per the hybrid
// detector: below incrementalMinNodes, or once a batch has touched more
// than incrementalChangeRatio of the graph, a full scan is cheap enough
// (and safer) that there is no point restricting the search.
const (
	incrementalMinNodes    = 20
	incrementalChangeRatio = 0.2
)

// Thresholds configures the hybrid detector's full-vs-incremental gate. The
// zero value is not meant to be used directly - start from DefaultThresholds
// and override only what a caller genuinely needs to tune (e.g. pkg/config).
type Thresholds struct {
	MinNodes    int
	ChangeRatio float64
}

// DefaultThresholds returns the detector's default gate: a full scan below
// 20 nodes, or whenever a batch has touched more than a fifth of the graph.
func DefaultThresholds() Thresholds {
	return Thresholds{MinNodes: incrementalMinNodes, ChangeRatio: incrementalChangeRatio}
}

// DetectCycle checks whether g, as it stands right after a batch's nodes
// and edges have been applied (and before layering has run), contains a
// directed cycle, using DefaultThresholds. addedEdges is the batch's newly
// added edges - the only ones that could have introduced a cycle, since
// every edge already present beforehand was cycle-free by induction.
// changed is the size of the batch (nodes plus edges touched), used only to
// pick a strategy.
func DetectCycle(g storage.Graph, addedEdges []storage.Edge, changed int) error {
	return DetectCycleWithThresholds(g, addedEdges, changed, DefaultThresholds())
}

// DetectCycleWithThresholds is DetectCycle with caller-supplied thresholds.
// Below th.MinNodes, or once C/N exceeds th.ChangeRatio, a full three-colour
// DFS runs over the whole graph; otherwise an incremental BFS reachability
// check runs per added edge, pruned by the layer invariant: if source's
// layer index is already below target's, following the existing layering
// would still hold and the edge cannot close a cycle.
func DetectCycleWithThresholds(g storage.Graph, addedEdges []storage.Edge, changed int, th Thresholds) error {
	if modeFor(g.NumNodes(), changed, th) == "full" {
		return detectFull(g)
	}
	return detectIncremental(g, addedEdges)
}

// DetectionMode reports which strategy DetectCycle will use for a graph of n
// nodes and a batch touching changed nodes/edges - "full" or "incremental".
// Exported so callers (metrics, logging) can label a commit without
// duplicating the threshold.
func DetectionMode(n, changed int) string {
	return modeFor(n, changed, DefaultThresholds())
}

// ModeFor is DetectionMode with caller-supplied thresholds.
func ModeFor(n, changed int, th Thresholds) string {
	return modeFor(n, changed, th)
}

func modeFor(n, changed int, th Thresholds) string {
	if n < th.MinNodes || ratio(changed, n) > th.ChangeRatio {
		return "full"
	}
	return "incremental"
}

func ratio(changed, n int) float64 {
	if n == 0 {
		return 1
	}
	return float64(changed) / float64(n)
}

func detectIncremental(g storage.Graph, addedEdges []storage.Edge) error {
	for _, edge := range addedEdges {
		if edge.SourceID == edge.TargetID {
			return &storage.CycleError{Cycle: []storage.NodeID{edge.SourceID, edge.SourceID}}
		}
		if layerOrderHolds(g, edge) {
			continue
		}
		if path, found := bfsReachable(g, edge.TargetID, edge.SourceID); found {
			cycle := append([]storage.NodeID{edge.SourceID}, path...)
			return &storage.CycleError{Cycle: cycle}
		}
	}
	return nil
}

// layerOrderHolds reports whether edge.SourceID already sits at a strictly
// lower layer index than edge.TargetID, in which case the existing
// layering is still consistent with this edge and it cannot be part of a
// newly introduced cycle.
func layerOrderHolds(g storage.Graph, edge storage.Edge) bool {
	srcIdx, srcOK := g.IndexOf(edge.SourceID)
	dstIdx, dstOK := g.IndexOf(edge.TargetID)
	return srcOK && dstOK && srcIdx < dstIdx
}

// bfsReachable searches forward from start for goal, returning the path
// (start..goal inclusive) if found.
func bfsReachable(g storage.Graph, start, goal storage.NodeID) ([]storage.NodeID, bool) {
	if start == goal {
		return []storage.NodeID{goal}, true
	}

	parent := make(map[storage.NodeID]storage.NodeID)
	visited := map[storage.NodeID]bool{start: true}
	queue := []storage.NodeID{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range g.SuccNodes(current) {
			if visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = current
			if next == goal {
				return buildPath(parent, start, goal), true
			}
			queue = append(queue, next)
		}
	}
	return nil, false
}

func buildPath(parent map[storage.NodeID]storage.NodeID, start, goal storage.NodeID) []storage.NodeID {
	path := []storage.NodeID{goal}
	current := goal
	for current != start {
		current = parent[current]
		path = append([]storage.NodeID{current}, path...)
	}
	return path
}

type nodeColor int

const (
	white nodeColor = iota
	gray
	black
)

// detectFull runs a three-colour DFS over the entire graph. A gray node
// reached again is a back edge; the cycle is reconstructed from parent
// pointers collected along the way.
func detectFull(g storage.Graph) error {
	colors := make(map[storage.NodeID]nodeColor)
	parent := make(map[storage.NodeID]storage.NodeID)

	for _, id := range g.NodeIDs() {
		if colors[id] != white {
			continue
		}
		if cycle := dfsVisit(g, id, colors, parent); cycle != nil {
			return &storage.CycleError{Cycle: cycle}
		}
	}
	return nil
}

func dfsVisit(g storage.Graph, id storage.NodeID, colors map[storage.NodeID]nodeColor, parent map[storage.NodeID]storage.NodeID) []storage.NodeID {
	colors[id] = gray

	for _, next := range g.SuccNodes(id) {
		if next == id {
			return []storage.NodeID{id, id}
		}
		switch colors[next] {
		case white:
			parent[next] = id
			if cycle := dfsVisit(g, next, colors, parent); cycle != nil {
				return cycle
			}
		case gray:
			return extractCycle(next, id, parent)
		}
	}

	colors[id] = black
	return nil
}

// extractCycle reconstructs the cycle found by a back edge from end to
// start, tracing parent pointers from end back to start, then reversing the
// result so it follows edge direction: start -> ... -> end -> start.
func extractCycle(start, end storage.NodeID, parent map[storage.NodeID]storage.NodeID) []storage.NodeID {
	cycle := []storage.NodeID{start}
	current := end
	for current != start {
		cycle = append(cycle, current)
		current = parent[current]
	}
	cycle = append(cycle, start)
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}
	return cycle
}
