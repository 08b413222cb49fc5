package algorithms

import "github.com/3plates/steadyflow/pkg/storage"

// UpdateLayers re-establishes the layering invariant (layerOf(u) < layerOf(v)
// for every edge u->v, indices compacted to {0,...,L-1}) for g after a
// batch has touched the nodes in dirty. It must run after cycle detection
// has already confirmed g is acyclic - on a cyclic graph the two phases
// below do not terminate.
//
// Phase 1 pushes every dirty node (and anything downstream of a move) down
// to just below its deepest predecessor. Phase 2 then pulls parents down
// to just above their shallowest child, tightening layers that phase 1 left
// needlessly high.
func UpdateLayers(g storage.Graph, dirty []storage.NodeID) storage.Graph {
	li := g.Layers()

	phase2 := make(map[storage.NodeID]struct{}, len(dirty))
	stack := make([]storage.NodeID, len(dirty))
	copy(stack, dirty)
	for _, id := range dirty {
		phase2[id] = struct{}{}
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !g.HasNode(id) {
			continue
		}

		correctIndex := 0
		for _, pred := range g.PredNodes(id) {
			if idx, ok := li.IndexOf(pred); ok && idx+1 > correctIndex {
				correctIndex = idx + 1
			}
		}

		currentIndex, _ := li.IndexOf(id)
		if correctIndex != currentIndex {
			li.MoveNode(id, correctIndex)
			for _, succ := range g.SuccNodes(id) {
				stack = append(stack, succ)
			}
			for _, pred := range g.PredNodes(id) {
				phase2[pred] = struct{}{}
			}
		}
	}

	g = g.WithLayers(li)
	return runPullUpPhase(g, phase2)
}

// runPullUpPhase implements phase 2: buckets phase2 ids by their current
// layer index and processes buckets in decreasing index order, so a parent
// that moves can cascade to its own parents before they are visited.
func runPullUpPhase(g storage.Graph, phase2 map[storage.NodeID]struct{}) storage.Graph {
	li := g.Layers()

	buckets := make(map[int][]storage.NodeID)
	maxIndex := -1
	enqueue := func(id storage.NodeID) {
		idx, ok := li.IndexOf(id)
		if !ok {
			return
		}
		buckets[idx] = append(buckets[idx], id)
		if idx > maxIndex {
			maxIndex = idx
		}
	}
	for id := range phase2 {
		enqueue(id)
	}

	for idx := maxIndex; idx >= 0; idx-- {
		for len(buckets[idx]) > 0 {
			id := buckets[idx][0]
			buckets[idx] = buckets[idx][1:]
			if !g.HasNode(id) {
				continue
			}

			currentIndex, ok := li.IndexOf(id)
			if !ok || currentIndex != idx {
				// moved into this bucket's index by an earlier cascade in a
				// lower bucket; it will be (or was) processed there instead.
				continue
			}

			succs := g.SuccNodes(id)
			if len(succs) == 0 {
				continue
			}

			minChildIndex := -1
			for _, succ := range succs {
				if childIdx, ok := li.IndexOf(succ); ok {
					if minChildIndex == -1 || childIdx < minChildIndex {
						minChildIndex = childIdx
					}
				}
			}
			if minChildIndex <= 0 {
				continue
			}

			correctIndex := minChildIndex - 1
			if correctIndex == currentIndex {
				continue
			}

			li.MoveNode(id, correctIndex)
			for _, pred := range g.PredNodes(id) {
				enqueue(pred)
			}
		}
	}

	return g.WithLayers(li)
}
