package segbuf

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Option = func(*config)

// WithInitialCapacity sets the capacity of the first segment. Growth after
// that doubles segment sizes regardless of this value.
func WithInitialCapacity(n int) Option {
	if n <= 0 {
		panic("initial capacity can't be < 1")
	}
	return func(c *config) {
		c.initial = n
	}
}

// WithPrometheus instruments the collector with Prometheus metrics. If
// registerer is nil, metrics are collected but not registered.
func WithPrometheus(registerer prometheus.Registerer, namespace, subsystem string) Option {
	return func(c *config) {
		c.metrics = newMetrics(registerer, namespace, subsystem)
	}
}

type config struct {
	initial int
	metrics *metrics
}

func newConfig(options ...Option) *config {
	options = append([]Option{
		WithInitialCapacity(DefaultSegmentSize),
		WithPrometheus(nil, "segbuf", ""),
	}, options...)

	cfg := config{}
	for _, opt := range options {
		opt(&cfg)
	}

	return &cfg
}
