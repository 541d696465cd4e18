// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package aggregator

import "github.com/jaegertracing/jaeger-analytics-go/internal/analysis/model"

// Matrix is the flat per-trace table: rows are operation names (plus
// "totalTime"), columns are trace IDs, cells are microseconds (zero
// where the operation does not appear on that trace's critical path).
type Matrix struct {
	Operations []string // ranked descending by row sum
	Traces     []string // ranked descending by that trace's totalTime
	Cells      map[string]map[string]int64
}

func (m *Matrix) cell(op, traceID string) int64 {
	row, ok := m.Cells[op]
	if !ok {
		return 0
	}
	return row[traceID]
}

// ExclusiveMatrix builds the exclusive-time flat matrix, ranked and
// truncated to Config.MaxOperations rows and Config.MaxTraces columns.
func (a *Aggregator) ExclusiveMatrix() *Matrix {
	return a.buildMatrix(func(ms *model.MetricSet) map[string]int64 { return ms.OpTimeExclusive })
}

// InclusiveMatrix builds the inclusive-time flat matrix, ranked and
// truncated the same way.
func (a *Aggregator) InclusiveMatrix() *Matrix {
	return a.buildMatrix(func(ms *model.MetricSet) map[string]int64 { return ms.OpTimeInclusive })
}

func (a *Aggregator) buildMatrix(axis func(*model.MetricSet) map[string]int64) *Matrix {
	valid := a.validEntries()

	cells := make(map[string]map[string]int64)
	rowTotal := make(map[string]int64)
	traceTotalTime := make(map[string]int64)

	for _, e := range valid {
		for op, v := range axis(e.Metrics) {
			row, ok := cells[op]
			if !ok {
				row = make(map[string]int64)
				cells[op] = row
			}
			row[e.TraceID] = v
			rowTotal[op] += v
		}
		traceTotalTime[e.TraceID] = e.Metrics.TotalTime
	}

	ops := make([]string, 0, len(cells))
	for op := range cells {
		ops = append(ops, op)
	}
	sumDesc(ops, rowTotal)
	ops = truncate(ops, a.cfg.MaxOperations)

	traces := make([]string, 0, len(valid))
	for _, e := range valid {
		traces = append(traces, e.TraceID)
	}
	sumDesc(traces, traceTotalTime)
	traces = truncate(traces, a.cfg.MaxTraces)

	return &Matrix{Operations: ops, Traces: traces, Cells: cells}
}
