// Package pmap provides persistent (structurally-shared) maps and sets used
// throughout the graph engine. Every index the engine maintains - entity
// store, adjacency lists, layer index - is one of these, so that a committed
// Graph and its Prior can share whatever subtrees a batch did not touch.
package pmap

import (
	iradix "github.com/hashicorp/go-immutable-radix/v2"
)

// Map is an immutable string-keyed map with structural sharing between
// versions. The zero value is not usable; use New.
type Map[V any] struct {
	tree *iradix.Tree[V]
}

// New returns an empty Map.
func New[V any]() Map[V] {
	return Map[V]{tree: iradix.New[V]()}
}

// Len returns the number of entries.
func (m Map[V]) Len() int {
	if m.tree == nil {
		return 0
	}
	return m.tree.Len()
}

// Get looks up a key.
func (m Map[V]) Get(key string) (V, bool) {
	if m.tree == nil {
		var zero V
		return zero, false
	}
	return m.tree.Get([]byte(key))
}

// Has reports whether key is present.
func (m Map[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Insert returns a new Map with key set to val. The receiver is unmodified.
func (m Map[V]) Insert(key string, val V) Map[V] {
	tree := m.tree
	if tree == nil {
		tree = iradix.New[V]()
	}
	newTree, _, _ := tree.Insert([]byte(key), val)
	return Map[V]{tree: newTree}
}

// Delete returns a new Map with key removed. The receiver is unmodified.
// Deleting an absent key is a no-op that returns an equivalent Map.
func (m Map[V]) Delete(key string) Map[V] {
	if m.tree == nil {
		return m
	}
	newTree, _, ok := m.tree.Delete([]byte(key))
	if !ok {
		return m
	}
	return Map[V]{tree: newTree}
}

// Range calls fn for every entry in key order, stopping early if fn returns
// false. Iteration order is lexicographic on the key bytes.
func (m Map[V]) Range(fn func(key string, val V) bool) {
	if m.tree == nil {
		return
	}
	it := m.tree.Root().Iterator()
	for {
		k, v, ok := it.Next()
		if !ok {
			return
		}
		if !fn(string(k), v) {
			return
		}
	}
}

// Keys returns every key in lexicographic order.
func (m Map[V]) Keys() []string {
	keys := make([]string, 0, m.Len())
	m.Range(func(k string, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Builder accumulates many inserts/deletes against one Map using a
// transient radix transaction, then freezes into a new Map on Commit. This
// is the "transient mutation during commit" optimisation from the design
// notes: a batch with many dirty nodes coalesces into one allocation pass
// instead of one per edit.
type Builder[V any] struct {
	txn *iradix.Txn[V]
}

// Txn starts a Builder seeded with the Map's current contents.
func (m Map[V]) Txn() *Builder[V] {
	tree := m.tree
	if tree == nil {
		tree = iradix.New[V]()
	}
	return &Builder[V]{txn: tree.Txn()}
}

// Get reads through the in-progress transaction.
func (b *Builder[V]) Get(key string) (V, bool) {
	return b.txn.Get([]byte(key))
}

// Insert stages a key/value write.
func (b *Builder[V]) Insert(key string, val V) {
	b.txn.Insert([]byte(key), val)
}

// Delete stages a key removal.
func (b *Builder[V]) Delete(key string) {
	b.txn.Delete([]byte(key))
}

// Commit freezes the transaction into an immutable Map.
func (b *Builder[V]) Commit() Map[V] {
	return Map[V]{tree: b.txn.Commit()}
}
