package table

import (
	"log"

	"github.com/segmentio/ksuid"

	"github.com/ssargent/bptable/pkg/index"
)

// indexRegistry fixes pkg/index's ID type parameter to OID for every index
// attached to a Table.
type indexRegistry[V any] struct {
	reg *index.Registry[V, OID]
}

func newIndexRegistry[V any]() *indexRegistry[V] {
	return &indexRegistry[V]{reg: index.NewRegistry[V, OID]()}
}

func (r *indexRegistry[V]) addRow(id OID, value V)    { r.reg.AddRow(id, value) }
func (r *indexRegistry[V]) removeRow(id OID, value V) { r.reg.RemoveRow(id, value) }

func (t *Table[V]) backfill(idx index.Index[V, OID]) {
	n := 0
	b := t.bucketHead
	for b != nil {
		for i := 0; i < b.used; i++ {
			r := &b.rows[i]
			if !r.deleted {
				idx.Add(r.oid, r.value)
				n++
			}
		}
		b = b.next
	}
	t.metrics.RecordIndexBackfill(idx.Name(), n)
	if n > 0 {
		log.Printf("table: backfilled index %q with %d rows (correlation=%s)", idx.Name(), n, ksuid.New())
	}
}

// CreateIndex registers a new Unique secondary index over t, keyed by
// project, and replays every existing live row into it.
//
// CreateIndex is a free function rather than a *Table[V] method because Go
// does not let a method introduce type parameters beyond its receiver's:
// K varies per index on the same table, so it can only be fixed at the
// call site.
func CreateIndex[V any, K comparable](t *Table[V], name string, project index.Projector[V, K]) (*index.UniqueIndex[V, K, OID], error) {
	idx, err := index.CreateUnique[V, OID, K](t.indexes.reg, name, project, index.WithMetrics(t.metrics))
	if err != nil {
		return nil, err
	}
	t.backfill(idx)
	return idx, nil
}

// CreateMultiIndex registers a new Multi secondary index over t, keyed by
// project, and replays every existing live row into it.
func CreateMultiIndex[V any, K comparable](t *Table[V], name string, project index.Projector[V, K]) (*index.MultiIndex[V, K, OID], error) {
	idx, err := index.CreateMulti[V, OID, K](t.indexes.reg, name, project, index.WithMetrics(t.metrics))
	if err != nil {
		return nil, err
	}
	t.backfill(idx)
	return idx, nil
}

// Index retrieves a previously created Unique index by name.
func Index[V any, K comparable](t *Table[V], name string) (*index.UniqueIndex[V, K, OID], error) {
	return index.LookupUnique[V, OID, K](t.indexes.reg, name)
}

// MultiIndex retrieves a previously created Multi index by name.
func MultiIndex[V any, K comparable](t *Table[V], name string) (*index.MultiIndex[V, K, OID], error) {
	return index.LookupMulti[V, OID, K](t.indexes.reg, name)
}
