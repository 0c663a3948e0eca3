package segbuf

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	writes   prometheus.Counter
	elements prometheus.Counter
	segments prometheus.Counter
	resets   *prometheus.CounterVec
	views    prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer, namespace, subsystem string) *metrics {
	if registerer != nil {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"component": "segbuf"},
			registerer,
		)
	}

	m := metrics{
		writes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "writes",
			Help:      "Number of write calls into the collector",
		}),
		elements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "elements_written",
			Help:      "Number of elements written into the collector",
		}),
		segments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "segments_allocated",
			Help:      "Number of segments allocated by the collector",
		}),
		resets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "resets",
			Help:      "Number of resets of the collector",
		}, []string{"type"}),
		views: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "views_exported",
			Help:      "Number of zero-copy views exported from the collector",
		}),
	}

	if registerer != nil {
		registerer.MustRegister(
			m.writes,
			m.elements,
			m.segments,
			m.resets,
			m.views,
		)
	}

	return &m
}

func (m *metrics) wrote(n int) {
	m.writes.Inc()
	m.elements.Add(float64(n))
}
