package index

import "github.com/ssargent/bptable/pkg/metrics"

type options struct {
	metrics *metrics.Metrics
}

// Option configures a UniqueIndex or MultiIndex at construction time.
type Option func(*options)

// WithMetrics attaches m so every Find call is instrumented. A nil Metrics
// (the default) disables instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
