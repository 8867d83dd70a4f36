package table

import "testing"

type employee struct {
	name string
	dept string
}

func TestInsertRowAssignsDistinctOIDs(t *testing.T) {
	tb := New[employee]()

	c1 := tb.InsertRow(employee{"alice", "eng"})
	c2 := tb.InsertRow(employee{"bob", "eng"})

	if c1.OID() == c2.OID() {
		t.Fatalf("two inserted rows share OID %v", c1.OID())
	}
	if v, ok := tb.Row(c1.OID()); !ok || v.name != "alice" {
		t.Fatalf("Row(%v) = (%+v, %v), want (alice, true)", c1.OID(), v, ok)
	}
	if got := tb.Count(); got != 2 {
		t.Fatalf("Count() = %d, want 2", got)
	}
}

func TestDeleteRowRemovesFromDirectoryNotSlots(t *testing.T) {
	tb := New[employee]()
	c := tb.InsertRow(employee{"alice", "eng"})

	if !tb.DeleteRow(c.OID()) {
		t.Fatal("DeleteRow on a live row reported false")
	}
	if tb.DeleteRow(c.OID()) {
		t.Fatal("DeleteRow on an already-deleted row reported true")
	}
	if _, ok := tb.Row(c.OID()); ok {
		t.Fatal("Row() found a deleted row")
	}
	if got := tb.Count(); got != 0 {
		t.Fatalf("Count() after delete = %d, want 0", got)
	}
}

func TestDeleteRowAbsentOID(t *testing.T) {
	tb := New[employee]()
	if tb.DeleteRow(OID(999)) {
		t.Fatal("DeleteRow on an unknown OID reported true")
	}
}

func TestBucketRolloverSpansMultipleBuckets(t *testing.T) {
	tb := New[employee](WithRowsPerBucket[employee](4))
	var oids []OID
	for i := 0; i < 10; i++ {
		oids = append(oids, tb.InsertRow(employee{"e", "eng"}).OID())
	}
	if got := tb.Count(); got != 10 {
		t.Fatalf("Count() = %d, want 10", got)
	}
	for _, oid := range oids {
		if _, ok := tb.Row(oid); !ok {
			t.Fatalf("Row(%v) not found after bucket rollover", oid)
		}
	}

	n := 0
	for c := tb.Begin(); c.Valid(); c = c.Next(nil) {
		n++
	}
	if n != 10 {
		t.Fatalf("cursor walk visited %d rows, want 10", n)
	}
}

func TestSelectFiltersAndSkipsDeleted(t *testing.T) {
	tb := New[employee](WithRowsPerBucket[employee](2))
	tb.InsertRow(employee{"alice", "eng"})
	bob := tb.InsertRow(employee{"bob", "sales"})
	tb.InsertRow(employee{"carol", "eng"})

	tb.DeleteRow(bob.OID())

	var names []string
	for c := tb.Select(func(e employee) bool { return e.dept == "eng" }); c.Valid(); c = c.Next(func(e employee) bool { return e.dept == "eng" }) {
		names = append(names, c.Value().name)
	}
	if len(names) != 2 || names[0] != "alice" || names[1] != "carol" {
		t.Fatalf("Select(eng) = %v, want [alice carol]", names)
	}

	for c := tb.Begin(); c.Valid(); c = c.Next(nil) {
		if c.Value().name == "bob" {
			t.Fatal("Begin() traversal surfaced a deleted row")
		}
	}
}

func TestCursorDereferenceInvalidPanics(t *testing.T) {
	tb := New[employee]()
	defer func() {
		if recover() == nil {
			t.Fatal("Value() on an invalid cursor did not panic")
		}
	}()
	tb.End().Value()
}

func TestEmptyTableBeginIsInvalid(t *testing.T) {
	tb := New[employee]()
	if tb.Begin().Valid() {
		t.Fatal("Begin() on an empty table is valid")
	}
	if tb.Begin() != tb.End() {
		t.Fatal("Begin() on an empty table does not equal End()")
	}
}
