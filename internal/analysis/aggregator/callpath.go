// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package aggregator

import "github.com/jaegertracing/jaeger-analytics-go/internal/analysis/model"

// CallPathValues is the per-(op, call-path) roll-up: every trace's
// value for that call-path, plus the worst exemplar seen across the
// whole run.
type CallPathValues struct {
	Values      []int64
	Exemplar    model.Exemplar
	exemplarSet bool
}

// CallPathRollup unions every MetricSet's call_chain, and for each
// (operation, call-path) pair collects its exclusive (or inclusive)
// times across traces along with the worst cross-run exemplar.
func (a *Aggregator) CallPathRollup(exclusive bool) map[string]map[string]*CallPathValues {
	rollup := make(map[string]map[string]*CallPathValues)

	for _, e := range a.validEntries() {
		timeMap := e.Metrics.CallPathTimeExclusive
		exemplarMap := e.Metrics.ExclusiveExampleMap
		if !exclusive {
			timeMap = e.Metrics.CallPathTimeInclusive
			exemplarMap = e.Metrics.InclusiveExampleMap
		}

		for op, callPaths := range e.Metrics.CallChain {
			opRollup, ok := rollup[op]
			if !ok {
				opRollup = make(map[string]*CallPathValues)
				rollup[op] = opRollup
			}
			for cp := range callPaths {
				cpRollup, ok := opRollup[cp]
				if !ok {
					cpRollup = &CallPathValues{}
					opRollup[cp] = cpRollup
				}
				cpRollup.Values = append(cpRollup.Values, timeMap[cp])

				if candidate, ok := exemplarMap[cp]; ok {
					model.UpdateMax(&cpRollup.Exemplar, &cpRollup.exemplarSet, candidate)
				}
			}
		}
	}
	return rollup
}
