// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package model

// TotalTimeKey is the synthetic flat-map entry carrying the root span's
// duration, so downstream percentile logic can normalize per-operation
// tails against end-to-end latency.
const TotalTimeKey = "totalTime"

// MetricSet holds the per-trace flat and call-path metrics produced by
// MetricExtractor. Use NewMetricSet for a valid, empty MetricSet; the zero
// value has nil maps and Valid false.
type MetricSet struct {
	OpTimeExclusive map[string]int64
	OpTimeInclusive map[string]int64

	CallPathTimeExclusive map[string]int64
	CallPathTimeInclusive map[string]int64

	ExclusiveExampleMap map[string]Exemplar
	InclusiveExampleMap map[string]Exemplar

	// CallChain maps a canonical operation name to the set of distinct
	// call-paths that end at a span with that name.
	CallChain map[string]map[string]struct{}

	RootSpanID string
	NumNodes   int
	Depth      int
	TotalTime  int64

	// Valid is false for a trace GraphBuilder rejected or one with no
	// root or critical path at extraction time; all maps above are
	// nil/empty in that case and the trace is excluded from aggregation.
	Valid bool
}

// NewMetricSet returns an initialized, valid, empty MetricSet.
func NewMetricSet() *MetricSet {
	return &MetricSet{
		OpTimeExclusive:       make(map[string]int64),
		OpTimeInclusive:       make(map[string]int64),
		CallPathTimeExclusive: make(map[string]int64),
		CallPathTimeInclusive: make(map[string]int64),
		ExclusiveExampleMap:   make(map[string]Exemplar),
		InclusiveExampleMap:   make(map[string]Exemplar),
		CallChain:             make(map[string]map[string]struct{}),
		Valid:                 true,
	}
}

// AddCallChain records that callPath ends at a span canonically named op.
func (m *MetricSet) AddCallChain(op, callPath string) {
	set, ok := m.CallChain[op]
	if !ok {
		set = make(map[string]struct{})
		m.CallChain[op] = set
	}
	set[callPath] = struct{}{}
}
