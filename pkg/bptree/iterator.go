package bptree

// Iterator is a comparable, input-iterator-style cursor over the live
// entries of a BPlusTree, in ascending or descending key order depending on
// which of Begin/RBegin produced it. The zero Iterator and the tree's End
// are always equal, so callers can range with:
//
//	for it := tree.Begin(); it != tree.End(); it = it.Next() {
//		k, v := it.Key(), it.Value()
//	}
//
// An Iterator's pointer identity is exactly the value wrapper it currently
// names, which is what makes two iterators comparable with ==.
type Iterator[K any, V any] struct {
	w        *valueWrapper[K, V]
	backward bool
}

// Valid reports whether the iterator names a live entry.
func (it Iterator[K, V]) Valid() bool {
	return it.w != nil
}

// Key returns the iterator's key. Calling Key on an invalid iterator panics,
// matching the source's documented "undefined past end()" contract.
func (it Iterator[K, V]) Key() K {
	if it.w == nil {
		panicInvalidNodeAccess("dereferenced an end iterator")
	}
	return it.w.key
}

// Value returns a copy of the iterator's value.
func (it Iterator[K, V]) Value() V {
	if it.w == nil {
		panicInvalidNodeAccess("dereferenced an end iterator")
	}
	return it.w.value
}

// Next returns the iterator advanced one live entry in its current
// direction; calling Next on an invalid iterator returns another invalid
// iterator.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	if it.w == nil {
		return it
	}
	w := step(it.w, it.backward)
	for w != nil && w.deleted {
		w = step(w, it.backward)
	}
	return Iterator[K, V]{w: w, backward: it.backward}
}

func step[K any, V any](w *valueWrapper[K, V], backward bool) *valueWrapper[K, V] {
	if backward {
		return w.prev
	}
	return w.next
}

func skipTombstones[K any, V any](w *valueWrapper[K, V], backward bool) *valueWrapper[K, V] {
	for w != nil && w.deleted {
		w = step(w, backward)
	}
	return w
}
