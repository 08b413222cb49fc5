package pmap

// Set is a persistent string set, implemented as a Map[struct{}]. Used for
// predecessor/successor edge-id sets and layer node membership, where only
// membership and iteration matter.
type Set[T ~string] struct {
	m Map[struct{}]
}

// NewSet returns an empty Set.
func NewSet[T ~string]() Set[T] {
	return Set[T]{m: New[struct{}]()}
}

// Len returns the number of members.
func (s Set[T]) Len() int {
	return s.m.Len()
}

// Has reports membership.
func (s Set[T]) Has(v T) bool {
	return s.m.Has(string(v))
}

// Add returns a new Set with v included.
func (s Set[T]) Add(v T) Set[T] {
	return Set[T]{m: s.m.Insert(string(v), struct{}{})}
}

// Remove returns a new Set with v excluded. Removing an absent member is a
// no-op.
func (s Set[T]) Remove(v T) Set[T] {
	return Set[T]{m: s.m.Delete(string(v))}
}

// Items returns every member in lexicographic order.
func (s Set[T]) Items() []T {
	keys := s.m.Keys()
	out := make([]T, len(keys))
	for i, k := range keys {
		out[i] = T(k)
	}
	return out
}

// Range calls fn for every member, stopping early if fn returns false.
func (s Set[T]) Range(fn func(v T) bool) {
	s.m.Range(func(k string, _ struct{}) bool {
		return fn(T(k))
	})
}

// SetBuilder accumulates membership edits against one Set via a transient
// transaction.
type SetBuilder[T ~string] struct {
	b *Builder[struct{}]
}

// Txn starts a SetBuilder seeded with the Set's current members.
func (s Set[T]) Txn() *SetBuilder[T] {
	return &SetBuilder[T]{b: s.m.Txn()}
}

// Add stages a member addition.
func (sb *SetBuilder[T]) Add(v T) {
	sb.b.Insert(string(v), struct{}{})
}

// Remove stages a member removal.
func (sb *SetBuilder[T]) Remove(v T) {
	sb.b.Delete(string(v))
}

// Has reads through the in-progress transaction.
func (sb *SetBuilder[T]) Has(v T) bool {
	_, ok := sb.b.Get(string(v))
	return ok
}

// Commit freezes the transaction into an immutable Set.
func (sb *SetBuilder[T]) Commit() Set[T] {
	return Set[T]{m: sb.b.Commit()}
}
