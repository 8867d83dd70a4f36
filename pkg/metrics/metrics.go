// Package metrics provides optional Prometheus instrumentation for the
// tree and table packages. A nil *Metrics is always safe to call methods
// on; every recording method is a no-op in that case, so instrumentation
// can be wired in only where a caller wants it.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusAccepted = "accepted"
	statusRejected = "rejected"
)

// Metrics holds the Prometheus collectors that a BPlusTree, a Table and
// its secondary indexes can share.
type Metrics struct {
	treeOpsTotal    *prometheus.CounterVec
	treeSplitsTotal prometheus.Counter

	tableRowsTotal     *prometheus.CounterVec
	tableIndexHits     *prometheus.CounterVec
	tableRowCount      prometheus.Gauge
	tableIndexBackfill *prometheus.CounterVec
}

// New creates and registers the full set of collectors.
func New() *Metrics {
	return &Metrics{
		treeOpsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bptable_tree_operations_total",
				Help: "Total number of B+tree operations by kind and outcome.",
			},
			[]string{"operation", "status"},
		),
		treeSplitsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bptable_tree_splits_total",
				Help: "Total number of node splits (leaf or internal) performed.",
			},
		),
		tableRowsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bptable_table_rows_total",
				Help: "Total number of table row operations by kind.",
			},
			[]string{"operation"},
		),
		tableIndexHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bptable_table_index_lookups_total",
				Help: "Total number of secondary index lookups by index name and outcome.",
			},
			[]string{"index", "status"},
		),
		tableRowCount: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "bptable_table_live_rows",
				Help: "Current number of live (non-deleted) rows.",
			},
		),
		tableIndexBackfill: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bptable_table_index_backfill_rows_total",
				Help: "Total number of rows replayed into a secondary index at creation time.",
			},
			[]string{"index"},
		),
	}
}

// RecordTreeOp records a tree-level insert/remove outcome.
func (m *Metrics) RecordTreeOp(operation string, accepted bool) {
	if m == nil {
		return
	}
	status := statusRejected
	if accepted {
		status = statusAccepted
	}
	m.treeOpsTotal.WithLabelValues(operation, status).Inc()
}

// RecordTreeSplit records a node split.
func (m *Metrics) RecordTreeSplit() {
	if m == nil {
		return
	}
	m.treeSplitsTotal.Inc()
}

// RecordRowOp records a table-level insert/delete.
func (m *Metrics) RecordRowOp(operation string) {
	if m == nil {
		return
	}
	m.tableRowsTotal.WithLabelValues(operation).Inc()
}

// RecordIndexLookup records a secondary index Find, hit or miss.
func (m *Metrics) RecordIndexLookup(indexName string, hit bool) {
	if m == nil {
		return
	}
	status := statusRejected
	if hit {
		status = statusAccepted
	}
	m.tableIndexHits.WithLabelValues(indexName, status).Inc()
}

// RecordIndexBackfill records rows replayed while creating an index over a
// non-empty table.
func (m *Metrics) RecordIndexBackfill(indexName string, rows int) {
	if m == nil || rows == 0 {
		return
	}
	m.tableIndexBackfill.WithLabelValues(indexName).Add(float64(rows))
}

// SetLiveRows sets the current live-row gauge.
func (m *Metrics) SetLiveRows(n int) {
	if m == nil {
		return
	}
	m.tableRowCount.Set(float64(n))
}
