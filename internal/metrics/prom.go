// Package metrics exposes solver instrumentation through Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records solve outcomes in Prometheus metrics. It satisfies the
// engine's MetricsSink interface.
type PromSink struct {
	solves   *prometheus.CounterVec
	duration prometheus.Histogram
	nodes    prometheus.Histogram
}

// NewPromSink registers solver metrics on the provided Prometheus registerer.
// If reg is nil, the default registerer is used. If the collectors are already
// registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	solves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_solves_total",
		Help: "Total number of solve calls by outcome",
	}, []string{"outcome"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_solve_duration_seconds",
		Help:    "Wall time of one solve call",
		Buckets: prometheus.DefBuckets,
	})
	nodes := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_solve_nodes",
		Help:    "Search nodes explored by one solve call",
		Buckets: prometheus.ExponentialBuckets(1, 10, 8),
	})

	if err := reg.Register(solves); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			solves = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(nodes); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			nodes = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{solves: solves, duration: duration, nodes: nodes}, nil
}

// RecordSolve records the outcome, duration and explored nodes of one solve.
func (s *PromSink) RecordSolve(outcome string, duration time.Duration, nodes uint64) {
	s.solves.WithLabelValues(outcome).Inc()
	s.duration.Observe(duration.Seconds())
	s.nodes.Observe(float64(nodes))
}
