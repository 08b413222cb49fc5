package algorithms

import "github.com/3plates/steadyflow/pkg/storage"

// IsConnected reports whether every node in g is reachable from every other
// node when edges are treated as undirected - weak connectivity.
func IsConnected(g storage.Graph) bool {
	ids := g.NodeIDs()
	if len(ids) <= 1 {
		return true
	}

	visited := map[storage.NodeID]bool{ids[0]: true}
	queue := []storage.NodeID{ids[0]}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range g.SuccNodes(current) {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
		for _, next := range g.PredNodes(current) {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return len(visited) == len(ids)
}

// IsTree reports whether g forms a tree: connected, exactly n-1 edges, and a
// single root. g is always acyclic by construction, so no separate cycle
// check is needed here.
func IsTree(g storage.Graph) bool {
	n := g.NumNodes()
	if n == 0 {
		return false
	}
	if n == 1 {
		return true
	}
	if g.NumEdges() != n-1 {
		return false
	}
	if !IsConnected(g) {
		return false
	}
	return len(RootNodes(g)) == 1
}

// RootNodes returns every node with no incoming edges, sorted.
func RootNodes(g storage.Graph) []storage.NodeID {
	var out []storage.NodeID
	for _, id := range g.NodeIDs() {
		if len(g.PredNodes(id)) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// SinkNodes returns every node with no outgoing edges, sorted.
func SinkNodes(g storage.Graph) []storage.NodeID {
	var out []storage.NodeID
	for _, id := range g.NodeIDs() {
		if len(g.SuccNodes(id)) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// LongestPathLength returns the number of edges on the longest path in g,
// computed by dynamic programming over nodes in layer order - a valid
// topological order, since every edge runs from a lower layer index to a
// higher one.
func LongestPathLength(g storage.Graph) int {
	dist := make(map[storage.NodeID]int)
	longest := 0

	for idx := 0; idx < g.NumLayers(); idx++ {
		for _, id := range g.LayerNodes(idx) {
			best := 0
			for _, pred := range g.PredNodes(id) {
				if d := dist[pred] + 1; d > best {
					best = d
				}
			}
			dist[id] = best
			if best > longest {
				longest = best
			}
		}
	}

	return longest
}
