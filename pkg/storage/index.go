package storage

import (
	"fmt"

	"github.com/3plates/steadyflow/pkg/pmap"
)

// LayerIndex is the layer-id keyed index over a graph's topological layering:
// layers (layerId -> Layer), layerMap (NodeId -> LayerId) and layerList
// (ordered layer-id sequence, position = current index). All three are kept
// in lockstep by MoveNode and LayerByIndex so layer.Index always matches the
// layer's position in layerList.
type LayerIndex struct {
	layers    pmap.Map[Layer]
	layerList []LayerID
	layerMap  pmap.Map[LayerID]
	nextID    int
}

// NewLayerIndex returns an empty LayerIndex (no layers yet; layer 0 is
// created lazily by LayerByIndex on first use).
func NewLayerIndex() LayerIndex {
	return LayerIndex{
		layers:   pmap.New[Layer](),
		layerMap: pmap.New[LayerID](),
	}
}

// LayerOf returns the layer id a node is assigned to.
func (li LayerIndex) LayerOf(id NodeID) (LayerID, bool) {
	return li.layerMap.Get(string(id))
}

// IndexOf returns the positional index of the layer a node is assigned to.
func (li LayerIndex) IndexOf(id NodeID) (int, bool) {
	layerID, ok := li.LayerOf(id)
	if !ok {
		return 0, false
	}
	layer, ok := li.layers.Get(string(layerID))
	if !ok {
		return 0, false
	}
	return layer.Index, true
}

// Layer returns the layer record for a layer id.
func (li LayerIndex) Layer(id LayerID) (Layer, bool) {
	return li.layers.Get(string(id))
}

// LayerList returns the ordered sequence of layer ids, position = index.
func (li LayerIndex) LayerList() []LayerID {
	out := make([]LayerID, len(li.layerList))
	copy(out, li.layerList)
	return out
}

// NumLayers returns the number of layers currently in use.
func (li LayerIndex) NumLayers() int {
	return len(li.layerList)
}

// LayerByIndex appends freshly allocated (empty) layers until index i
// exists, then returns that layer's id. Mutates li in place - callers must
// only use this on the transient builder copy held during a commit.
func (li *LayerIndex) LayerByIndex(i int) LayerID {
	for len(li.layerList) <= i {
		id := LayerID(fmt.Sprintf("L%d", li.nextID))
		li.nextID++
		layer := Layer{ID: id, Index: len(li.layerList), Nodes: pmap.NewSet[NodeID]()}
		li.layers = li.layers.Insert(string(id), layer)
		li.layerList = append(li.layerList, id)
	}
	return li.layerList[i]
}

// MoveNode relocates id to targetIndex: removes it from its current layer's
// node set, ensures layers up to targetIndex exist, inserts it into the
// target layer, updates layerMap, and - if the source layer became empty -
// deletes it and decrements the Index of every subsequent layer so indices
// stay contiguous ({0,...,L-1}).
func (li *LayerIndex) MoveNode(id NodeID, targetIndex int) {
	var sourceLayerID LayerID
	hadSource := false
	if layerID, ok := li.layerMap.Get(string(id)); ok {
		sourceLayerID = layerID
		hadSource = true
	}

	targetLayerID := li.LayerByIndex(targetIndex)

	if hadSource {
		if layer, ok := li.layers.Get(string(sourceLayerID)); ok {
			layer.Nodes = layer.Nodes.Remove(id)
			li.layers = li.layers.Insert(string(sourceLayerID), layer)
		}
	}

	if layer, ok := li.layers.Get(string(targetLayerID)); ok {
		layer.Nodes = layer.Nodes.Add(id)
		li.layers = li.layers.Insert(string(targetLayerID), layer)
	}
	li.layerMap = li.layerMap.Insert(string(id), targetLayerID)

	if hadSource && sourceLayerID != targetLayerID {
		li.compactIfEmpty(sourceLayerID)
	}
}

// RemoveNode drops id from its current layer's node set and from layerMap
// entirely - no replacement layer assignment is made. A no-op if id has no
// current layer assignment. Compacts the source layer away if it is left
// empty, same as MoveNode.
func (li *LayerIndex) RemoveNode(id NodeID) {
	layerID, ok := li.layerMap.Get(string(id))
	if !ok {
		return
	}
	if layer, ok := li.layers.Get(string(layerID)); ok {
		layer.Nodes = layer.Nodes.Remove(id)
		li.layers = li.layers.Insert(string(layerID), layer)
	}
	li.layerMap = li.layerMap.Delete(string(id))
	li.compactIfEmpty(layerID)
}

// compactIfEmpty removes layerID from layers/layerList if it holds no nodes,
// and decrements Index on every layer that followed it so the set of used
// indices remains {0,...,L-1}.
func (li *LayerIndex) compactIfEmpty(layerID LayerID) {
	layer, ok := li.layers.Get(string(layerID))
	if !ok || layer.Nodes.Len() > 0 {
		return
	}

	removedAt := layer.Index
	li.layers = li.layers.Delete(string(layerID))

	newList := make([]LayerID, 0, len(li.layerList)-1)
	for _, id := range li.layerList {
		if id == layerID {
			continue
		}
		newList = append(newList, id)
	}
	li.layerList = newList

	for idx := removedAt; idx < len(li.layerList); idx++ {
		id := li.layerList[idx]
		l, ok := li.layers.Get(string(id))
		if !ok {
			continue
		}
		l.Index = idx
		li.layers = li.layers.Insert(string(id), l)
	}
}
