package index

import "github.com/ssargent/bptable/pkg/metrics"

// UniqueIndex maps a projected key to at most one row id.
type UniqueIndex[V any, K comparable, ID comparable] struct {
	name    string
	project Projector[V, K]
	byKey   map[K]ID
	metrics *metrics.Metrics
}

// NewUnique constructs a Unique index over project, named name.
func NewUnique[V any, K comparable, ID comparable](name string, project Projector[V, K], opts ...Option) *UniqueIndex[V, K, ID] {
	o := applyOptions(opts)
	return &UniqueIndex[V, K, ID]{name: name, project: project, byKey: make(map[K]ID), metrics: o.metrics}
}

func (x *UniqueIndex[V, K, ID]) Name() string { return x.name }
func (x *UniqueIndex[V, K, ID]) Kind() Kind   { return Unique }

// Add indexes value under id. If another live row already holds the same
// projected key, that entry wins silently and id is left unindexed, an
// explicit resolution of the otherwise-implicit unique-index collision
// policy: first write wins, later ones are simply not findable by key.
func (x *UniqueIndex[V, K, ID]) Add(id ID, value V) {
	k := x.project(value)
	if _, exists := x.byKey[k]; exists {
		return
	}
	x.byKey[k] = id
}

// Remove erases the entry for value's projected key, but only if it still
// points at id; a stale id never evicts a newer row that won the same key.
func (x *UniqueIndex[V, K, ID]) Remove(id ID, value V) {
	k := x.project(value)
	if cur, ok := x.byKey[k]; ok && cur == id {
		delete(x.byKey, k)
	}
}

// Find returns the row id indexed under key, if any.
func (x *UniqueIndex[V, K, ID]) Find(key K) (ID, bool) {
	id, ok := x.byKey[key]
	x.metrics.RecordIndexLookup(x.name, ok)
	return id, ok
}

// Count returns the number of distinct keys currently indexed.
func (x *UniqueIndex[V, K, ID]) Count() int {
	return len(x.byKey)
}
