// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package pipeline

import "github.com/prometheus/client_golang/prometheus"

// Metrics exports worker-pool gauges/counters the way the teacher's
// collector exports span-processing metrics (internal/metrics), using
// client_golang directly rather than the teacher's internal Factory
// abstraction — see DESIGN.md for why that abstraction was not wired
// for this single-process batch tool.
type Metrics struct {
	TracesProcessed prometheus.Counter
	TracesRejected  prometheus.Counter
	SpansSanitized  prometheus.Counter
}

// NewMetrics registers the pool's counters with reg and returns them.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TracesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "jaeger_analytics",
			Subsystem: "pipeline",
			Name:      "traces_processed_total",
			Help:      "Number of traces successfully processed into a MetricSet.",
		}),
		TracesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "jaeger_analytics",
			Subsystem: "pipeline",
			Name:      "traces_rejected_total",
			Help:      "Number of traces rejected by GraphBuilder (malformed input or no root).",
		}),
		SpansSanitized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "jaeger_analytics",
			Subsystem: "pipeline",
			Name:      "spans_sanitized_total",
			Help:      "Number of child spans shrunk or detached by the Sanitizer.",
		}),
	}
	reg.MustRegister(m.TracesProcessed, m.TracesRejected, m.SpansSanitized)
	return m
}

// WithMetrics attaches m to the pool; subsequent Submit/process calls
// record into it. Safe to call once, before Start.
func (p *Pool) WithMetrics(m *Metrics) *Pool {
	p.metrics = m
	return p
}
