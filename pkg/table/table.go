// Package table implements a bucketed, append-only row store with OID
// identity and pluggable secondary indexes, built on top of pkg/index.
//
// Rows are never moved or compacted in place: delete marks a row dead but
// leaves its slot allocated, the same tombstone discipline pkg/bptree uses
// for tree leaves. OIDs are drawn from a single monotonic counter shared by
// buckets and rows, so an OID alone never tells you which kind of thing it
// named without consulting the directory.
package table

import "github.com/ssargent/bptable/pkg/metrics"

// OID identifies a bucket or a row. The zero value is never issued.
type OID uint64

const defaultRowsPerBucket = 100

type row[V any] struct {
	oid     OID
	value   V
	deleted bool
}

type bucket[V any] struct {
	oid       OID
	rows      []row[V]
	used      int
	next      *bucket[V]
	previous  *bucket[V]
}

func (b *bucket[V]) full() bool {
	return b.used >= len(b.rows)
}

type location[V any] struct {
	bucket *bucket[V]
	slot   int
}

// Table is a row store over value type V, keyed by OID, with zero or more
// named secondary indexes. Table is move-only: it holds no exported copy
// constructor, since a structural copy would alias bucket pointers between
// two tables while each kept an independent (and quickly diverging)
// directory and index set.
type Table[V any] struct {
	rowsPerBucket int
	lastOID       OID

	bucketHead *bucket[V]
	bucketTail *bucket[V]
	directory  map[OID]location[V]

	indexes *indexRegistry[V]
	metrics *metrics.Metrics
}

// Option configures a Table at construction time.
type Option[V any] func(*Table[V])

// WithMetrics attaches m so every row and index operation is instrumented.
// A Table built without this option (or with a nil m) works without metrics.
func WithMetrics[V any](m *metrics.Metrics) Option[V] {
	return func(t *Table[V]) {
		t.metrics = m
	}
}

// WithRowsPerBucket overrides the default bucket capacity. Panics if n <= 0.
func WithRowsPerBucket[V any](n int) Option[V] {
	return func(t *Table[V]) {
		if n <= 0 {
			panic("table: rows per bucket must be positive")
		}
		t.rowsPerBucket = n
	}
}

// New returns an empty Table.
func New[V any](opts ...Option[V]) *Table[V] {
	t := &Table[V]{
		rowsPerBucket: defaultRowsPerBucket,
		directory:     make(map[OID]location[V]),
		indexes:       newIndexRegistry[V](),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Table[V]) nextOID() OID {
	t.lastOID++
	return t.lastOID
}

func (t *Table[V]) tailBucket() *bucket[V] {
	if t.bucketTail != nil && !t.bucketTail.full() {
		return t.bucketTail
	}
	b := &bucket[V]{oid: t.nextOID(), rows: make([]row[V], t.rowsPerBucket)}
	if t.bucketTail == nil {
		t.bucketHead = b
	} else {
		t.bucketTail.next = b
		b.previous = t.bucketTail
	}
	t.bucketTail = b
	return b
}

// InsertRow appends value as a new row and returns a cursor positioned at
// it. The returned cursor's OID is the row's permanent identity.
func (t *Table[V]) InsertRow(value V) Cursor[V] {
	b := t.tailBucket()
	oid := t.nextOID()
	b.rows[b.used] = row[V]{oid: oid, value: value}
	slot := b.used
	b.used++
	t.directory[oid] = location[V]{bucket: b, slot: slot}

	t.indexes.addRow(oid, value)
	t.metrics.RecordRowOp("insert")
	t.metrics.SetLiveRows(len(t.directory))
	return Cursor[V]{b: b, slot: slot}
}

// DeleteRow tombstones the row named by oid and reports whether it was
// still live. Every registered index is notified before the row's slot is
// marked deleted, so an index never observes a row it cannot also reach
// through the directory.
func (t *Table[V]) DeleteRow(oid OID) bool {
	loc, ok := t.directory[oid]
	if !ok {
		return false
	}
	r := &loc.bucket.rows[loc.slot]
	t.indexes.removeRow(oid, r.value)
	r.deleted = true
	delete(t.directory, oid)

	t.metrics.RecordRowOp("delete")
	t.metrics.SetLiveRows(len(t.directory))
	return true
}

// Row returns the live value named by oid.
func (t *Table[V]) Row(oid OID) (V, bool) {
	loc, ok := t.directory[oid]
	if !ok {
		var zero V
		return zero, false
	}
	return loc.bucket.rows[loc.slot].value, true
}

// Count returns the number of live rows.
func (t *Table[V]) Count() int {
	return len(t.directory)
}

// Cursor walks live rows in insertion (bucket, slot) order, optionally
// filtered by a predicate. Comparable via == like bptree.Iterator, since
// every field is itself comparable.
type Cursor[V any] struct {
	b    *bucket[V]
	slot int
}

// Valid reports whether c refers to a row rather than the end of the scan.
func (c Cursor[V]) Valid() bool {
	return c.b != nil
}

// OID returns the row's identity. Panics on an invalid cursor.
func (c Cursor[V]) OID() OID {
	if c.b == nil {
		panic("table: dereferenced an invalid cursor")
	}
	return c.b.rows[c.slot].oid
}

// Value returns the row's value. Panics on an invalid cursor.
func (c Cursor[V]) Value() V {
	if c.b == nil {
		panic("table: dereferenced an invalid cursor")
	}
	return c.b.rows[c.slot].value
}

// Next advances c to the next live row satisfying pred (nil matches
// every row), skipping tombstones along the way.
func (c Cursor[V]) Next(pred func(V) bool) Cursor[V] {
	if c.b == nil {
		return c
	}
	return seek(c.b, c.slot+1, pred)
}

func seek[V any](b *bucket[V], slot int, pred func(V) bool) Cursor[V] {
	for b != nil {
		for slot < b.used {
			r := &b.rows[slot]
			if !r.deleted && (pred == nil || pred(r.value)) {
				return Cursor[V]{b: b, slot: slot}
			}
			slot++
		}
		b = b.next
		slot = 0
	}
	return Cursor[V]{}
}

// Begin returns a cursor at the first live row, or an invalid cursor if
// the table has none.
func (t *Table[V]) Begin() Cursor[V] {
	return seek(t.bucketHead, 0, nil)
}

// End returns the invalid cursor one past the last row, matching Cursor's
// own zero value.
func (t *Table[V]) End() Cursor[V] {
	return Cursor[V]{}
}

// Select returns a cursor at the first live row satisfying pred.
func (t *Table[V]) Select(pred func(V) bool) Cursor[V] {
	return seek(t.bucketHead, 0, pred)
}
