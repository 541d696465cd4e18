// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package aggregator

import (
	"sort"

	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/model"
)

// PercentileCell is one (operation, percentile) result: the raw
// microsecond value at that percentile of the operation's non-zero
// cells, the same percentile of the "totalTime" row as denominator, and
// their ratio (0 when the denominator is 0).
type PercentileCell struct {
	Percentile int
	RawValue   float64
	Denominator float64
	Ratio      float64
}

// PercentileTable computes, for every operation in m and every
// configured percentile, the percentile of that operation's non-zero
// cells against the matching percentile of the totalTime row. Uses
// linear interpolation between ranks (the "linear" method), matching
// spec.md S5 exactly. m.Traces may already be MaxTraces-truncated by
// buildMatrix; percentiles are computed over whatever trace set m
// carries, i.e. after truncation, not before.
func (a *Aggregator) PercentileTable(m *Matrix) map[string]map[int]PercentileCell {
	table := make(map[string]map[int]PercentileCell, len(m.Operations))

	totalRow := m.Cells[model.TotalTimeKey]
	totalValues := nonZeroValues(totalRow, m.Traces)

	for _, op := range m.Operations {
		row := m.Cells[op]
		values := nonZeroValues(row, m.Traces)

		perOp := make(map[int]PercentileCell, len(a.cfg.Percentiles))
		for _, p := range a.cfg.Percentiles {
			raw := percentileOf(values, p)
			denom := percentileOf(totalValues, p)
			ratio := 0.0
			if denom != 0 {
				ratio = raw / denom
			}
			perOp[p] = PercentileCell{Percentile: p, RawValue: raw, Denominator: denom, Ratio: ratio}
		}
		table[op] = perOp
	}
	return table
}

func nonZeroValues(row map[string]int64, traces []string) []float64 {
	values := make([]float64, 0, len(traces))
	for _, tid := range traces {
		if v := row[tid]; v != 0 {
			values = append(values, float64(v))
		}
	}
	sort.Float64s(values)
	return values
}

// percentileOf returns the p-th percentile of sorted using linear
// interpolation between closest ranks (numpy's default "linear"
// method). Returns 0 for an empty input.
func percentileOf(sorted []float64, p int) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	rank := float64(p) / 100 * float64(n-1)
	lo := int(rank)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
