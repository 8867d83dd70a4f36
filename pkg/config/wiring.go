package config

import (
	"github.com/ssargent/bptable/pkg/bptree"
	"github.com/ssargent/bptable/pkg/comp"
	"github.com/ssargent/bptable/pkg/table"
)

// NewTree constructs a BPlusTree using cfg's FanOut. NewTree is a free
// function rather than a method on Config because Go does not let a method
// introduce type parameters beyond its receiver's, and K/V are fixed only
// at the call site.
func NewTree[K any, V any](cfg *Config, cmp comp.Comparator[K], opts ...bptree.Option[K, V]) *bptree.BPlusTree[K, V] {
	return bptree.New[K, V](cfg.FanOut, cmp, opts...)
}

// NewTable constructs a Table using cfg's RowsPerBucket. Any caller-supplied
// opts are applied after the config-derived WithRowsPerBucket, so a caller
// can still override the bucket size explicitly.
func NewTable[V any](cfg *Config, opts ...table.Option[V]) *table.Table[V] {
	all := append([]table.Option[V]{table.WithRowsPerBucket[V](cfg.RowsPerBucket)}, opts...)
	return table.New[V](all...)
}
