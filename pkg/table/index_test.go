package table

import "testing"

type account struct {
	email string
	dept  string
}

func byAccountEmail(a account) string { return a.email }
func byAccountDept(a account) string  { return a.dept }

func TestCreateIndexBackfillsExistingRows(t *testing.T) {
	tb := New[account]()
	tb.InsertRow(account{"alice@example.com", "eng"})
	tb.InsertRow(account{"bob@example.com", "eng"})

	idx, err := CreateIndex[account, string](tb, "by_email", byAccountEmail)
	if err != nil {
		t.Fatalf("CreateIndex() error = %v", err)
	}
	if _, ok := idx.Find("alice@example.com"); !ok {
		t.Fatal("CreateIndex did not back-fill a row inserted before the index existed")
	}
	if _, ok := idx.Find("bob@example.com"); !ok {
		t.Fatal("CreateIndex did not back-fill the second pre-existing row")
	}
}

func TestCreateIndexThenInsertKeepsIndexCoherent(t *testing.T) {
	tb := New[account]()
	idx, err := CreateIndex[account, string](tb, "by_email", byAccountEmail)
	if err != nil {
		t.Fatalf("CreateIndex() error = %v", err)
	}

	c := tb.InsertRow(account{"carol@example.com", "sales"})
	id, ok := idx.Find("carol@example.com")
	if !ok || id != c.OID() {
		t.Fatalf("Find(carol@example.com) = (%v, %v), want (%v, true)", id, ok, c.OID())
	}

	tb.DeleteRow(c.OID())
	if _, ok := idx.Find("carol@example.com"); ok {
		t.Fatal("index still finds a row after DeleteRow")
	}
}

func TestCreateMultiIndexBackfillAndLookup(t *testing.T) {
	tb := New[account]()
	tb.InsertRow(account{"a@example.com", "eng"})
	tb.InsertRow(account{"b@example.com", "eng"})
	tb.InsertRow(account{"c@example.com", "sales"})

	idx, err := CreateMultiIndex[account, string](tb, "by_dept", byAccountDept)
	if err != nil {
		t.Fatalf("CreateMultiIndex() error = %v", err)
	}
	if got := idx.Count(); got != 3 {
		t.Fatalf("Count() = %d, want 3", got)
	}
	if _, ok := idx.Find("eng"); !ok {
		t.Fatal("Find(eng) reported ok = false")
	}
}

func TestIndexDuplicateNameFails(t *testing.T) {
	tb := New[account]()
	if _, err := CreateIndex[account, string](tb, "by_email", byAccountEmail); err != nil {
		t.Fatalf("first CreateIndex() error = %v", err)
	}
	if _, err := CreateIndex[account, string](tb, "by_email", byAccountEmail); err == nil {
		t.Fatal("second CreateIndex() with a duplicate name returned nil error")
	}
}

func TestIndexLookupKindMismatch(t *testing.T) {
	tb := New[account]()
	if _, err := CreateMultiIndex[account, string](tb, "by_dept", byAccountDept); err != nil {
		t.Fatalf("CreateMultiIndex() error = %v", err)
	}
	if _, err := Index[account, string](tb, "by_dept"); err == nil {
		t.Fatal("Index() on a multi index registered under that name returned nil error")
	}
	if _, err := MultiIndex[account, string](tb, "by_dept"); err != nil {
		t.Fatalf("MultiIndex(by_dept) error = %v", err)
	}
}

func TestIndexLookupNotFound(t *testing.T) {
	tb := New[account]()
	if _, err := Index[account, string](tb, "missing"); err == nil {
		t.Fatal("Index(missing) returned nil error")
	}
}
