package index

import "github.com/ssargent/bptable/pkg/metrics"

// MultiIndex maps a projected key to any number of row ids.
type MultiIndex[V any, K comparable, ID comparable] struct {
	name    string
	project Projector[V, K]
	byKey   map[K]map[ID]struct{}
	metrics *metrics.Metrics
}

// NewMulti constructs a Multi index over project, named name.
func NewMulti[V any, K comparable, ID comparable](name string, project Projector[V, K], opts ...Option) *MultiIndex[V, K, ID] {
	o := applyOptions(opts)
	return &MultiIndex[V, K, ID]{name: name, project: project, byKey: make(map[K]map[ID]struct{}), metrics: o.metrics}
}

func (x *MultiIndex[V, K, ID]) Name() string { return x.name }
func (x *MultiIndex[V, K, ID]) Kind() Kind   { return Multi }

// Add always indexes value under id, alongside any other rows sharing the
// same projected key.
func (x *MultiIndex[V, K, ID]) Add(id ID, value V) {
	k := x.project(value)
	set, ok := x.byKey[k]
	if !ok {
		set = make(map[ID]struct{})
		x.byKey[k] = set
	}
	set[id] = struct{}{}
}

// Remove erases exactly the (key, id) pair derived from value, not an
// arbitrary entry under that key.
func (x *MultiIndex[V, K, ID]) Remove(id ID, value V) {
	k := x.project(value)
	set, ok := x.byKey[k]
	if !ok {
		return
	}
	delete(set, id)
	if len(set) == 0 {
		delete(x.byKey, k)
	}
}

// Find returns some row id indexed under key, or false if none is indexed.
// Callers needing every matching row must track ids independently; this
// core does not expose a range/multi-result scan.
func (x *MultiIndex[V, K, ID]) Find(key K) (ID, bool) {
	set, ok := x.byKey[key]
	if !ok {
		x.metrics.RecordIndexLookup(x.name, false)
		return *new(ID), false
	}
	for id := range set {
		x.metrics.RecordIndexLookup(x.name, true)
		return id, true
	}
	x.metrics.RecordIndexLookup(x.name, false)
	return *new(ID), false
}

// Count returns the total number of indexed (key, id) pairs across every
// projected key.
func (x *MultiIndex[V, K, ID]) Count() int {
	n := 0
	for _, set := range x.byKey {
		n += len(set)
	}
	return n
}
